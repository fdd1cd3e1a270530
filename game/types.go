package game

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/mental-dice/domain/dice"
	"github.com/luca-patrignani/mental-dice/domain/probability"
)

// Errors returned by New and Run.
var (
	ErrTooFewDice  = errors.New("at least 2 dice required")
	ErrNilConsole  = errors.New("console cannot be nil")
	ErrInputClosed = errors.New("input closed")
)

// State is a step of the game state machine.
type State int

const (
	MainMenu State = iota
	CoinToss
	FirstPick
	SecondPick
	Rolling
	Resolution
	HelpOverlay
	Cancelled
	Exited
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "main_menu"
	case CoinToss:
		return "coin_toss"
	case FirstPick:
		return "first_pick"
	case SecondPick:
		return "second_pick"
	case Rolling:
		return "rolling"
	case Resolution:
		return "resolution"
	case HelpOverlay:
		return "help_overlay"
	case Cancelled:
		return "cancelled"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Party is one side of the game.
type Party int

const (
	Human Party = iota
	Computer
)

// String returns the name the console addresses the party by.
func (p Party) String() string {
	if p == Human {
		return "You"
	}
	return "Computer"
}

// label names the party in ledger records.
func (p Party) label() string {
	if p == Human {
		return "human"
	}
	return "computer"
}

// Outcome is the result of a round.
type Outcome int

const (
	Tie Outcome = iota
	HumanWins
	ComputerWins
)

func (o Outcome) String() string {
	switch o {
	case HumanWins:
		return "human"
	case ComputerWins:
		return "computer"
	default:
		return "tie"
	}
}

// Round is the record of one played round. Dice are referenced by their
// 0-based position in the game's dice set.
type Round struct {
	ID           string
	HumanFirst   bool
	HumanDie     int
	ComputerDie  int
	HumanRoll    int
	ComputerRoll int
	Outcome      Outcome
}

// Score counts round outcomes from the human's point of view.
type Score struct {
	Wins   int
	Losses int
	Ties   int
}

// Played returns the number of rounds that reached a resolution.
func (s Score) Played() int {
	return s.Wins + s.Losses + s.Ties
}

func (s *Score) add(o Outcome) {
	switch o {
	case HumanWins:
		s.Wins++
	case ComputerWins:
		s.Losses++
	default:
		s.Ties++
	}
}

// MessageKind tells the console how to present a line.
type MessageKind int

const (
	Plain MessageKind = iota
	Info
	Success
	Warning
	Error
)

// Console is the line oriented terminal the game talks through.
type Console interface {
	// ReadLine shows prompt and blocks until a full line is read. It returns
	// io.EOF once the input is exhausted.
	ReadLine(prompt string) (string, error)
	Print(kind MessageKind, text string)
	ShowProbabilities(set []dice.Die, m probability.Matrix)
}
