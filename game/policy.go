package game

import (
	"fmt"

	"github.com/luca-patrignani/mental-dice/fairness"
)

// VerificationPolicy decides what a failed commitment check does to the game.
type VerificationPolicy int

const (
	// WarnOnMismatch reports the failure and keeps playing.
	WarnOnMismatch VerificationPolicy = iota
	// FailOnMismatch aborts the round with fairness.ErrVerificationFailed.
	FailOnMismatch
)

func (p VerificationPolicy) String() string {
	if p == FailOnMismatch {
		return "fail"
	}
	return "warn"
}

// checkVerification is the only place that reacts to a verification result.
func (g *Game) checkVerification(verified bool, subject string) error {
	if verified {
		g.console.Print(Success, fmt.Sprintf("HMAC verified. %s is fair.", subject))
		return nil
	}
	g.logger.Warn("commitment verification failed", "subject", subject, "policy", g.policy.String())
	if g.policy == FailOnMismatch {
		g.console.Print(Error, "HMAC verification failed! Aborting the round.")
		return fmt.Errorf("%s: %w", subject, fairness.ErrVerificationFailed)
	}
	g.console.Print(Warning, "WARNING: HMAC verification failed! Computer might cheat.")
	return nil
}
