package fairness

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
	"sync"

	"go.dedis.ch/kyber/v4/util/random"
)

// KeySize is the length in bytes of a commitment key.
const KeySize = 32

// Sampler draws keys and uniform values from a random stream.
type Sampler struct {
	mu     sync.Mutex
	stream cipher.Stream
}

// NewSampler returns a Sampler over a kyber random stream. With no readers
// the stream is fed by crypto/rand.
func NewSampler(readers ...io.Reader) *Sampler {
	return &Sampler{stream: random.New(readers...)}
}

var defaultSampler = NewSampler()

// Key returns KeySize fresh random bytes.
func (s *Sampler) Key() []byte {
	key := make([]byte, KeySize)
	s.fill(key)
	return key
}

// Uniform returns a value drawn uniformly from [0, n).
func (s *Sampler) Uniform(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRange, n)
	}
	width := bits.Len(uint(n - 1))
	if width == 0 {
		return 0, nil
	}
	buf := make([]byte, (width+7)/8)
	mask := uint64(1)<<width - 1
	for {
		s.fill(buf)
		v := toUint64(buf) & mask
		if v < uint64(n) {
			return int(v), nil
		}
	}
}

// Commitment draws a fresh key and secret value in [0, n) and commits to them.
func (s *Sampler) Commitment(n int) (*Commitment, error) {
	value, err := s.Uniform(n)
	if err != nil {
		return nil, err
	}
	return Commit(n, s.Key(), value)
}

func (s *Sampler) fill(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(b)
	s.stream.XORKeyStream(b, b)
}

func toUint64(b []byte) uint64 {
	var padded [8]byte
	copy(padded[8-len(b):], b)
	return binary.BigEndian.Uint64(padded[:])
}
