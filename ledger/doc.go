// Package ledger keeps an append-only, hash-chained record of the fairness
// exchanges played during a session.
//
// # Core Components
//
// Chain: An in-memory log of blocks where each block stores the hash of its
// predecessor, so any later edit breaks the chain.
//
// Block: One completed exchange: the disclosed digest, the revealed key and
// secret value, the counterpart contribution and the combined result.
//
// # Security Properties
//
// Verify walks the whole chain and checks:
//   - Linkage: index continuity and previous hash of every block
//   - Integrity: the stored hash of every block
//   - Fairness: every revealed key and value still matches its digest, and
//     the stored result is the combination of value and contribution
//
// The chain lives only as long as the process; it is never persisted.
package ledger
