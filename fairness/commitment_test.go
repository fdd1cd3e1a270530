package fairness

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chi-square critical values at p = 0.001, indexed by degrees of freedom.
var chiSquareCritical = map[int]float64{
	1: 10.828,
	2: 13.816,
	5: 20.515,
	6: 22.458,
	9: 27.877,
}

func seededSampler(seed int64) *Sampler {
	return NewSampler(rand.New(rand.NewSource(seed)))
}

func chiSquare(counts []int, draws int) float64 {
	expected := float64(draws) / float64(len(counts))
	var stat float64
	for _, c := range counts {
		d := float64(c) - expected
		stat += d * d / expected
	}
	return stat
}

func TestNewCommitmentInvalidRange(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := NewCommitment(n)
		require.ErrorIs(t, err, ErrInvalidRange, "n=%d", n)
	}
}

func TestNewCommitmentValueInRange(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 6, 7, 8, 9, 100, 1000} {
		for i := 0; i < 200; i++ {
			c, err := NewCommitment(n)
			require.NoError(t, err)
			require.Equal(t, n, c.Range())
			_, err = c.Combine(0)
			require.NoError(t, err)
			r, err := c.Reveal()
			require.NoError(t, err)
			require.GreaterOrEqual(t, r.Value, 0)
			require.Less(t, r.Value, n)
			require.Len(t, r.Key, KeySize)
		}
	}
}

func TestUniformChiSquare(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"coin", 2},
		{"three dice", 3},
		{"six faces", 6},
		{"seven faces", 7},
		{"ten faces", 10},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seededSampler(int64(i + 1))
			draws := 6000 * tt.n
			counts := make([]int, tt.n)
			for j := 0; j < draws; j++ {
				v, err := s.Uniform(tt.n)
				require.NoError(t, err)
				counts[v]++
			}
			stat := chiSquare(counts, draws)
			limit, ok := chiSquareCritical[tt.n-1]
			require.True(t, ok)
			assert.Less(t, stat, limit, "counts %v", counts)
		})
	}
}

type panicStream struct{}

func (panicStream) XORKeyStream(dst, src []byte) {
	panic("stream must not be read")
}

func TestUniformSingletonDrawsNothing(t *testing.T) {
	s := &Sampler{stream: panicStream{}}
	v, err := s.Uniform(1)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

// fixedStream replays the same byte forever so rejection can be observed.
type fixedStream struct {
	seq   []byte
	calls int
}

func (f *fixedStream) XORKeyStream(dst, src []byte) {
	for i := range dst {
		dst[i] = src[i] ^ f.seq[f.calls%len(f.seq)]
	}
	f.calls++
}

func TestUniformRejectsOutOfRangeDraws(t *testing.T) {
	// n = 5 needs 3 bits: 0x07 and 0x05 mask to 7 and 5 and are rejected,
	// 0xfb masks to 3 and is accepted.
	stream := &fixedStream{seq: []byte{0x07, 0x05, 0xfb}}
	s := &Sampler{stream: stream}
	v, err := s.Uniform(5)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, stream.calls)
}

func TestVerify(t *testing.T) {
	c, err := seededSampler(7).Commitment(6)
	require.NoError(t, err)
	_, err = c.Combine(2)
	require.NoError(t, err)
	r, err := c.Reveal()
	require.NoError(t, err)

	require.True(t, Verify(r.Key, r.Value, r.Digest))
	require.True(t, r.Verify())
	require.Equal(t, ComputeDigest(r.Key, r.Value), c.Digest())

	t.Run("tampered key byte", func(t *testing.T) {
		for i := range r.Key {
			key := bytes.Clone(r.Key)
			key[i] ^= 0x01
			assert.False(t, Verify(key, r.Value, r.Digest), "byte %d", i)
		}
	})
	t.Run("changed value", func(t *testing.T) {
		for v := 0; v < 6; v++ {
			if v == r.Value {
				continue
			}
			assert.False(t, Verify(r.Key, v, r.Digest), "value %d", v)
		}
	})
	t.Run("malformed digest", func(t *testing.T) {
		assert.False(t, Verify(r.Key, r.Value, "not-hex"))
		assert.False(t, Verify(r.Key, r.Value, r.Digest[:10]))
	})
}

func TestCommitDeterministicDigest(t *testing.T) {
	key := bytes.Repeat([]byte{0xab}, KeySize)
	a, err := Commit(6, key, 4)
	require.NoError(t, err)
	b, err := Commit(6, key, 4)
	require.NoError(t, err)
	assert.Equal(t, a.Digest(), b.Digest())
	assert.Len(t, a.Digest(), 64)

	c, err := Commit(6, key, 3)
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest(), c.Digest())
}

func TestCommitRejectsBadInput(t *testing.T) {
	key := make([]byte, KeySize)
	_, err := Commit(0, key, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = Commit(3, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = Commit(3, key, 3)
	assert.Error(t, err)
	_, err = Commit(3, key, -1)
	assert.Error(t, err)
}

func TestCombine(t *testing.T) {
	key := make([]byte, KeySize)
	tests := []struct {
		name        string
		n, secret   int
		counterpart int
		want        int
		wantErr     error
	}{
		{name: "zero contribution returns secret", n: 6, secret: 4, counterpart: 0, want: 4},
		{name: "wraps around", n: 6, secret: 4, counterpart: 5, want: 3},
		{name: "coin", n: 2, secret: 1, counterpart: 1, want: 0},
		{name: "singleton", n: 1, secret: 0, counterpart: 0, want: 0},
		{name: "negative", n: 6, secret: 4, counterpart: -1, wantErr: ErrContributionOutOfRange},
		{name: "equal to range", n: 6, secret: 4, counterpart: 6, wantErr: ErrContributionOutOfRange},
		{name: "far above range", n: 2, secret: 0, counterpart: 99, wantErr: ErrContributionOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Commit(tt.n, key, tt.secret)
			require.NoError(t, err)
			got, err := c.Combine(tt.counterpart)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				_, err = c.Reveal()
				require.ErrorIs(t, err, ErrNotCombined)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombineFixedContributionStaysUniform(t *testing.T) {
	const n = 6
	s := seededSampler(99)
	for x := 0; x < n; x++ {
		counts := make([]int, n)
		draws := 2000 * n
		for i := 0; i < draws; i++ {
			c, err := s.Commitment(n)
			require.NoError(t, err)
			v, err := c.Combine(x)
			require.NoError(t, err)
			counts[v]++
		}
		assert.Less(t, chiSquare(counts, draws), chiSquareCritical[n-1], "contribution %d counts %v", x, counts)
	}
}

func TestDisclosureOrdering(t *testing.T) {
	c, err := NewCommitment(6)
	require.NoError(t, err)
	require.NotEmpty(t, c.Digest())

	_, err = c.Reveal()
	require.True(t, errors.Is(err, ErrNotCombined))

	_, err = c.Combine(1)
	require.NoError(t, err)
	_, err = c.Combine(1)
	require.ErrorIs(t, err, ErrAlreadyCombined)

	r, err := c.Reveal()
	require.NoError(t, err)
	r.Key[0] ^= 0xff
	again, err := c.Reveal()
	require.NoError(t, err)
	assert.True(t, again.Verify(), "reveal must hand out a copy of the key")
}
