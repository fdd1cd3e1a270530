package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned by New and Die.Face.
var (
	ErrNoFaces   = errors.New("die must have at least one face")
	ErrFaceIndex = errors.New("face index out of bounds")
)

// Die is an immutable ordered sequence of face values.
type Die struct {
	faces []int
}

// New creates a Die from the given faces. The slice is copied.
func New(faces ...int) (Die, error) {
	if len(faces) == 0 {
		return Die{}, ErrNoFaces
	}
	f := make([]int, len(faces))
	copy(f, faces)
	return Die{faces: f}, nil
}

// Size returns the number of faces.
func (d Die) Size() int {
	return len(d.faces)
}

// Face returns the value of the face at index i.
func (d Die) Face(i int) (int, error) {
	if i < 0 || i >= len(d.faces) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrFaceIndex, i, len(d.faces))
	}
	return d.faces[i], nil
}

// Faces returns a copy of the face values.
func (d Die) Faces() []int {
	f := make([]int, len(d.faces))
	copy(f, d.faces)
	return f
}

// String renders the die as [f1,f2,...].
func (d Die) String() string {
	parts := make([]string, len(d.faces))
	for i, f := range d.faces {
		parts[i] = strconv.Itoa(f)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
