package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/luca-patrignani/mental-dice/domain/dice"
	"github.com/luca-patrignani/mental-dice/domain/probability"
	"github.com/luca-patrignani/mental-dice/fairness"
	"github.com/luca-patrignani/mental-dice/ledger"
)

// Game drives the menu loop and the rounds for a fixed dice set.
type Game struct {
	dice    []dice.Die
	console Console
	logger  *slog.Logger
	commit  Committer
	policy  VerificationPolicy
	ledger  *ledger.Chain
	newID   func() string

	state State
	score Score
}

// New creates a game over set. The set is copied and never changes.
func New(set []dice.Die, console Console, opts ...Option) (*Game, error) {
	if len(set) < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewDice, len(set))
	}
	if console == nil {
		return nil, ErrNilConsole
	}
	g := &Game{
		dice:    append([]dice.Die(nil), set...),
		console: console,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		commit:  fairness.NewCommitment,
		policy:  WarnOnMismatch,
		ledger:  ledger.NewChain(),
		newID:   uuid.NewString,
		state:   MainMenu,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// State returns the current state of the game.
func (g *Game) State() State {
	return g.state
}

// Score returns the outcomes of the rounds played so far.
func (g *Game) Score() Score {
	return g.score
}

// Ledger returns the chain of exchanges played in this session.
func (g *Game) Ledger() *ledger.Chain {
	return g.ledger
}

func (g *Game) enter(s State) {
	if g.state != s {
		g.logger.Debug("state transition", "from", g.state.String(), "to", s.String())
	}
	g.state = s
}

// Run shows the main menu until the human exits. It returns nil on exit,
// ErrInputClosed when the input ends, and ctx.Err() when ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.enter(MainMenu)
	for {
		g.console.Print(Plain, "Main menu:")
		g.console.Print(Plain, "  1) Roll dice (play a round)")
		g.console.Print(Plain, "  2) Show probabilities table (help)")
		g.console.Print(Plain, "  0) Exit")
		choice, err := g.readLine(ctx, "Select option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "0":
			g.exit()
			return nil
		case "1":
			if _, err := g.PlayRound(ctx); err != nil {
				return err
			}
		case "2":
			g.showHelp()
		default:
			g.console.Print(Error, "Invalid option. Please choose 0, 1, or 2.")
		}
	}
}

// PlayRound plays one full round. It returns a nil Round and a nil error
// when the human cancels the die selection.
func (g *Game) PlayRound(ctx context.Context) (*Round, error) {
	round := &Round{ID: g.newID()}
	g.logger.Debug("round started", "round", round.ID)

	g.enter(CoinToss)
	g.console.Print(Info, "First, we decide who goes first by provable fair coin toss (0 or 1).")
	bit, err := g.runExchange(ctx, round.ID, exchange{
		label:       "coin toss",
		subject:     "Coin toss",
		speaker:     "Computer",
		n:           2,
		contributor: humanContribution{g: g, prompt: "Enter your number (0 or 1): ", invalid: "Please enter 0 or 1."},
	})
	if err != nil {
		return nil, g.abort(err)
	}
	round.HumanFirst = bit == 0
	order := []Party{Computer, Human}
	if round.HumanFirst {
		g.console.Print(Info, "You go first!")
		order = []Party{Human, Computer}
	} else {
		g.console.Print(Info, "Computer goes first.")
	}

	remaining := newIndexSet(len(g.dice))
	for i, party := range order {
		if i == 0 {
			g.enter(FirstPick)
		} else {
			g.enter(SecondPick)
		}
		var idx int
		switch party {
		case Human:
			var ok bool
			idx, ok, err = g.humanPick(ctx, remaining)
			if err != nil {
				return nil, g.abort(err)
			}
			if !ok {
				g.enter(Cancelled)
				g.console.Print(Info, "Cancelled dice selection. Returning to menu.")
				g.logger.Debug("round cancelled", "round", round.ID)
				g.enter(MainMenu)
				return nil, nil
			}
			round.HumanDie = idx
		case Computer:
			idx, err = g.computerPick(ctx, round.ID, remaining)
			if err != nil {
				return nil, g.abort(err)
			}
			round.ComputerDie = idx
		}
		remaining.Remove(idx)
	}

	g.enter(Rolling)
	g.console.Print(Info, "Rolling dice...")
	if round.HumanRoll, err = g.roll(ctx, round.ID, Human, round.HumanDie); err != nil {
		return nil, g.abort(err)
	}
	if round.ComputerRoll, err = g.roll(ctx, round.ID, Computer, round.ComputerDie); err != nil {
		return nil, g.abort(err)
	}

	g.enter(Resolution)
	round.Outcome = resolve(round.HumanRoll, round.ComputerRoll)
	g.score.add(round.Outcome)
	g.console.Print(Plain, fmt.Sprintf("Your roll result: %d", round.HumanRoll))
	g.console.Print(Plain, fmt.Sprintf("Computer's roll result: %d", round.ComputerRoll))
	switch round.Outcome {
	case HumanWins:
		g.console.Print(Success, "You win this round!")
	case ComputerWins:
		g.console.Print(Warning, "Computer wins this round!")
	default:
		g.console.Print(Info, "It's a tie!")
	}
	g.logger.Info("round finished",
		"round", round.ID,
		"human_die", round.HumanDie+1,
		"computer_die", round.ComputerDie+1,
		"human_roll", round.HumanRoll,
		"computer_roll", round.ComputerRoll,
		"outcome", round.Outcome.String(),
	)
	g.enter(MainMenu)
	return round, nil
}

// abort returns to the main menu and passes err through.
func (g *Game) abort(err error) error {
	g.enter(MainMenu)
	return err
}

func resolve(human, computer int) Outcome {
	switch {
	case human > computer:
		return HumanWins
	case human < computer:
		return ComputerWins
	default:
		return Tie
	}
}

// humanPick shows the remaining dice, numbered by their position in the
// full set. It reports false when the human cancels.
func (g *Game) humanPick(ctx context.Context, remaining *indexSet) (int, bool, error) {
	for {
		g.console.Print(Plain, "Select your dice:")
		for _, idx := range remaining.Values() {
			g.console.Print(Plain, fmt.Sprintf("  %d) %s", idx+1, g.dice[idx]))
		}
		g.console.Print(Plain, "  0) Cancel")
		g.console.Print(Plain, "  h) Help (show probabilities table)")
		choice, err := g.readLine(ctx, "Your choice: ")
		if err != nil {
			return 0, false, err
		}
		if choice == "0" {
			return 0, false, nil
		}
		if strings.EqualFold(choice, "h") {
			g.showHelp()
			continue
		}
		n, err := strconv.Atoi(choice)
		if err != nil || !remaining.Contains(n-1) {
			g.console.Print(Error, "Invalid choice, try again.")
			continue
		}
		g.console.Print(Info, fmt.Sprintf("You selected dice #%d: %s", n, g.dice[n-1]))
		return n - 1, true, nil
	}
}

// computerPick selects one of the remaining dice with an exchange over
// their count. A single remaining die still runs the exchange over a range
// of one, with no prompt.
func (g *Game) computerPick(ctx context.Context, roundID string, remaining *indexSet) (int, error) {
	n := remaining.Len()
	g.console.Print(Info, "Computer is selecting dice fairly...")
	var contributor Contributor = fixedContribution(0)
	if n > 1 {
		contributor = humanContribution{
			g:       g,
			prompt:  fmt.Sprintf("Enter your number (0 to %d): ", n-1),
			invalid: fmt.Sprintf("Enter an integer from 0 to %d", n-1),
		}
	}
	pos, err := g.runExchange(ctx, roundID, exchange{
		label:       "dice selection",
		subject:     "Dice selection",
		speaker:     "Computer",
		n:           n,
		contributor: contributor,
	})
	if err != nil {
		return 0, err
	}
	idx := remaining.At(pos)
	g.console.Print(Info, fmt.Sprintf("Computer selected dice #%d: %s", idx+1, g.dice[idx]))
	return idx, nil
}

// roll rolls the die at idx for party. The computer commits and the human
// contributes for both parties' rolls.
func (g *Game) roll(ctx context.Context, roundID string, party Party, idx int) (int, error) {
	d := g.dice[idx]
	who := party.String()
	g.console.Print(Info, fmt.Sprintf("%s rolling dice %s", who, d))
	face, err := g.runExchange(ctx, roundID, exchange{
		label:   party.label() + " roll",
		subject: "Roll",
		speaker: who + " computer",
		n:       d.Size(),
		contributor: humanContribution{
			g:       g,
			prompt:  fmt.Sprintf("%s, enter your number (0 to %d): ", who, d.Size()-1),
			invalid: fmt.Sprintf("Enter a valid integer from 0 to %d", d.Size()-1),
		},
	})
	if err != nil {
		return 0, err
	}
	value, err := d.Face(face)
	if err != nil {
		return 0, err
	}
	g.console.Print(Plain, fmt.Sprintf("%s rolled face index %d, value: %d", who, face, value))
	return value, nil
}

func (g *Game) showHelp() {
	prev := g.state
	g.enter(HelpOverlay)
	g.console.ShowProbabilities(g.dice, probability.NewMatrix(g.dice))
	g.enter(prev)
}

func (g *Game) exit() {
	g.enter(Exited)
	s := g.score
	if s.Played() > 0 {
		g.console.Print(Info, fmt.Sprintf("Rounds played: %d (won %d, lost %d, tied %d)", s.Played(), s.Wins, s.Losses, s.Ties))
	}
	if exchanges := g.ledger.Len() - 1; exchanges > 0 {
		if err := g.ledger.Verify(); err != nil {
			g.logger.Error("ledger verification failed", "err", err)
			g.console.Print(Warning, fmt.Sprintf("Session audit failed: %v", err))
		} else {
			g.console.Print(Success, fmt.Sprintf("Session audit: %d exchanges verified.", exchanges))
		}
	}
	g.console.Print(Plain, "Exiting. Goodbye!")
}

type readResult struct {
	line string
	err  error
}

// readLine reads one trimmed line. It returns ctx.Err() as soon as ctx is
// done, even while the console is still blocked on the read; that read is
// abandoned and its result discarded.
func (g *Game) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	done := make(chan readResult, 1)
	go func() {
		line, err := g.console.ReadLine(prompt)
		done <- readResult{line: line, err: err}
	}()

	var res readResult
	select {
	case <-ctx.Done():
		g.logger.Debug("input abandoned", "err", ctx.Err())
		return "", ctx.Err()
	case res = <-done:
	}
	if errors.Is(res.err, io.EOF) {
		return "", ErrInputClosed
	}
	if res.err != nil {
		return "", fmt.Errorf("read input: %w", res.err)
	}
	return strings.TrimSpace(res.line), nil
}

// promptNumber asks until the answer is an integer in [0, n).
func (g *Game) promptNumber(ctx context.Context, prompt, invalid string, n int) (int, error) {
	for {
		answer, err := g.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(answer)
		if err != nil || v < 0 || v >= n {
			g.console.Print(Error, invalid)
			continue
		}
		return v, nil
	}
}
