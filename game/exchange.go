package game

import (
	"context"
	"fmt"

	"github.com/luca-patrignani/mental-dice/ledger"
)

// Contributor supplies the counterpart value of an exchange over [0, n).
type Contributor interface {
	Contribute(ctx context.Context, n int) (int, error)
}

// ContributorFunc adapts a function to Contributor.
type ContributorFunc func(ctx context.Context, n int) (int, error)

func (f ContributorFunc) Contribute(ctx context.Context, n int) (int, error) {
	return f(ctx, n)
}

// fixedContribution contributes the same value regardless of the range.
type fixedContribution int

func (v fixedContribution) Contribute(context.Context, int) (int, error) {
	return int(v), nil
}

// humanContribution asks the human for a number in range.
type humanContribution struct {
	g       *Game
	prompt  string
	invalid string
}

func (h humanContribution) Contribute(ctx context.Context, n int) (int, error) {
	return h.g.promptNumber(ctx, h.prompt, h.invalid, n)
}

// exchange describes one commit-reveal run.
type exchange struct {
	label       string // ledger label, e.g. "coin toss"
	subject     string // used in the verification line, e.g. "Coin toss"
	speaker     string // who the disclosed values are attributed to
	n           int
	contributor Contributor
}

// runExchange discloses the digest, collects the contribution, combines,
// reveals the key and secret value, and verifies the commitment.
func (g *Game) runExchange(ctx context.Context, roundID string, ex exchange) (int, error) {
	commitment, err := g.commit(ex.n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ex.label, err)
	}
	g.console.Print(Info, fmt.Sprintf("%s HMAC: %s", ex.speaker, commitment.Digest()))

	contribution, err := ex.contributor.Contribute(ctx, ex.n)
	if err != nil {
		return 0, err
	}
	result, err := commitment.Combine(contribution)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ex.label, err)
	}
	reveal, err := commitment.Reveal()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ex.label, err)
	}
	g.console.Print(Plain, fmt.Sprintf("%s secret key (hex): %s", ex.speaker, reveal.KeyHex()))
	g.console.Print(Plain, fmt.Sprintf("%s secret number: %d", ex.speaker, reveal.Value))

	verified := reveal.Verify()
	g.logger.Debug("exchange completed",
		"round", roundID,
		"label", ex.label,
		"range", ex.n,
		"digest", reveal.Digest,
		"contribution", contribution,
		"result", result,
		"verified", verified,
	)
	if _, err := g.ledger.Append(ledger.Record{
		RoundID:      roundID,
		Label:        ex.label,
		Range:        ex.n,
		Digest:       reveal.Digest,
		Key:          reveal.KeyHex(),
		Value:        reveal.Value,
		Contribution: contribution,
		Result:       result,
		Verified:     verified,
	}); err != nil {
		return 0, fmt.Errorf("record %s: %w", ex.label, err)
	}

	if err := g.checkVerification(verified, ex.subject); err != nil {
		return 0, err
	}
	return result, nil
}
