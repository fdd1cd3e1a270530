package fairness

import (
	"crypto/hmac"
	"encoding/hex"
	"fmt"
	"strconv"

	"golang.org/x/crypto/sha3"
)

// Commitment binds a committer to a secret value in [0, Range()) before the
// counterpart contributes. It is single use: one Combine, then Reveal.
type Commitment struct {
	n        int
	key      []byte
	value    int
	digest   string
	combined bool
}

// NewCommitment draws a fresh commitment over [0, n) from crypto/rand.
func NewCommitment(n int) (*Commitment, error) {
	return defaultSampler.Commitment(n)
}

// Commit builds a commitment from a known key and secret value.
func Commit(n int, key []byte, value int) (*Commitment, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRange, n)
	}
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}
	if value < 0 || value >= n {
		return nil, fmt.Errorf("secret value %d not in [0, %d)", value, n)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Commitment{
		n:      n,
		key:    k,
		value:  value,
		digest: hex.EncodeToString(mac(k, value)),
	}, nil
}

// Range returns the exclusive upper bound of the value space.
func (c *Commitment) Range() int {
	return c.n
}

// Digest returns the hex HMAC-SHA3-256 of the secret value. It is safe to
// disclose before the counterpart contributes.
func (c *Commitment) Digest() string {
	return c.digest
}

// Combine merges the counterpart's value with the secret value.
func (c *Commitment) Combine(counterpart int) (int, error) {
	if c.combined {
		return 0, ErrAlreadyCombined
	}
	if counterpart < 0 || counterpart >= c.n {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrContributionOutOfRange, counterpart, c.n)
	}
	c.combined = true
	return (c.value + counterpart) % c.n, nil
}

// Reveal discloses the key and secret value. It fails until Combine succeeded.
func (c *Commitment) Reveal() (Reveal, error) {
	if !c.combined {
		return Reveal{}, ErrNotCombined
	}
	key := make([]byte, len(c.key))
	copy(key, c.key)
	return Reveal{
		Range:  c.n,
		Key:    key,
		Value:  c.value,
		Digest: c.digest,
	}, nil
}

// Reveal is the opened commitment.
type Reveal struct {
	Range  int
	Key    []byte
	Value  int
	Digest string
}

// KeyHex returns the revealed key in hex.
func (r Reveal) KeyHex() string {
	return hex.EncodeToString(r.Key)
}

// Verify checks the revealed key and value against the disclosed digest.
func (r Reveal) Verify() bool {
	return Verify(r.Key, r.Value, r.Digest)
}

// Verify recomputes the digest of value under key and compares it with digest
// in constant time.
func Verify(key []byte, value int, digest string) bool {
	expected, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	return hmac.Equal(mac(key, value), expected)
}

// ComputeDigest returns the hex digest of value under key.
func ComputeDigest(key []byte, value int) string {
	return hex.EncodeToString(mac(key, value))
}

func mac(key []byte, value int) []byte {
	h := hmac.New(sha3.New256, key)
	h.Write([]byte(strconv.Itoa(value)))
	return h.Sum(nil)
}
