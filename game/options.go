package game

import (
	"log/slog"

	"github.com/luca-patrignani/mental-dice/fairness"
	"github.com/luca-patrignani/mental-dice/ledger"
)

// Committer creates the commitment for one exchange over [0, n).
type Committer func(n int) (*fairness.Commitment, error)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. A nil logger keeps the discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithCommitter replaces fairness.NewCommitment as the source of commitments.
func WithCommitter(c Committer) Option {
	return func(g *Game) {
		if c != nil {
			g.commit = c
		}
	}
}

// WithVerificationPolicy sets what a failed verification does.
func WithVerificationPolicy(p VerificationPolicy) Option {
	return func(g *Game) {
		g.policy = p
	}
}

// WithLedger records the session's exchanges on chain instead of a private one.
func WithLedger(chain *ledger.Chain) Option {
	return func(g *Game) {
		if chain != nil {
			g.ledger = chain
		}
	}
}

// WithIDGenerator sets the function used to name rounds.
func WithIDGenerator(f func() string) Option {
	return func(g *Game) {
		if f != nil {
			g.newID = f
		}
	}
}
