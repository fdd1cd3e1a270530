package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinDice is the smallest number of dice a game can be played with.
const MinDice = 3

// Example is a valid argument list of three non-transitive dice.
const Example = "2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3"

// Errors wrapped by ParseError.
var (
	ErrTooFewDice = fmt.Errorf("at least %d dice required", MinDice)
	ErrEmptySpec  = errors.New("die has no faces")
	ErrNonInteger = errors.New("die contains non-integer values")
)

// ParseError reports which die description could not be parsed.
type ParseError struct {
	Index int // 0-based position of the offending argument, -1 for the whole list
	Spec  string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("dice #%d %s: '%s'", e.Index+1, e.Err, e.Spec)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts die descriptions into dice.
func Parse(args []string) ([]Die, error) {
	if len(args) < MinDice {
		return nil, &ParseError{Index: -1, Err: fmt.Errorf("%w, got %d", ErrTooFewDice, len(args))}
	}
	set := make([]Die, 0, len(args))
	for i, spec := range args {
		faces, err := parseFaces(spec)
		if err != nil {
			return nil, &ParseError{Index: i, Spec: spec, Err: err}
		}
		d, err := New(faces...)
		if err != nil {
			return nil, &ParseError{Index: i, Spec: spec, Err: err}
		}
		set = append(set, d)
	}
	return set, nil
}

func parseFaces(spec string) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, ErrEmptySpec
	}
	parts := strings.Split(spec, ",")
	faces := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, ErrNonInteger
		}
		faces = append(faces, v)
	}
	return faces, nil
}

// Usage returns the help text printed when the dice arguments are invalid.
func Usage(program string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "usage: %s <die> <die> <die> [<die>...]\n", program)
	fmt.Fprintf(&b, "At least %d dice required, each a comma-separated list of integers.\n", MinDice)
	b.WriteString("Example:\n")
	fmt.Fprintf(&b, "  %s %s\n", program, Example)
	return b.String()
}
