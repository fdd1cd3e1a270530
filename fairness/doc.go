// Package fairness implements a two-party commit-reveal exchange that lets a
// committer and a counterpart jointly draw an unbiased value in [0, n).
//
// # Protocol
//
// The exchange follows three strictly ordered steps:
//  1. The committer draws a secret value uniformly in [0, n) and a fresh
//     256-bit key, and discloses the HMAC-SHA3-256 digest of the value.
//  2. The counterpart submits its own value in [0, n).
//  3. The committer combines both values as (secret + counterpart) mod n and
//     reveals key and secret so the counterpart can check the digest.
//
// Commitment enforces the ordering it can see: the key and the secret value
// are only readable through Reveal, which fails until Combine has run.
//
// # Sampling
//
// Secret values are drawn by rejection sampling over the smallest number of
// bits that covers the range, so no value is favoured when n is not a power
// of two. Random bytes come from a kyber random stream backed by crypto/rand.
package fairness
