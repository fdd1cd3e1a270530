package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/luca-patrignani/mental-dice/domain/dice"
	"github.com/luca-patrignani/mental-dice/domain/probability"
	"github.com/luca-patrignani/mental-dice/game"
)

// TableCaption introduces the probability table.
const TableCaption = "Probabilities that Dice_i beats Dice_j (rows vs columns)"

// Console reads answers from in and writes everything to out.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// Option configures a Console.
type Option func(*Console)

// WithInteractive reads answers through pterm's interactive text input
// instead of plain line reads. It only makes sense when in is a terminal:
// the interactive input reads the terminal directly and draws its prompt on
// pterm's default output, bypassing the Console's reader and writer.
func WithInteractive(interactive bool) Option {
	return func(c *Console) {
		c.interactive = interactive
	}
}

// New returns a Console reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ game.Console = (*Console)(nil)

// ReadLine returns the next line without its line terminator. A final line
// without a newline is returned as is; io.EOF follows it.
func (c *Console) ReadLine(prompt string) (string, error) {
	if c.interactive {
		answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText(strings.TrimSuffix(strings.TrimSpace(prompt), ":")).Show()
		if err != nil {
			return "", fmt.Errorf("interactive input: %w", err)
		}
		return answer, nil
	}
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", io.EOF
		}
		return strings.TrimRight(line, "\r"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Print writes text to out, prefixed according to kind.
func (c *Console) Print(kind game.MessageKind, text string) {
	var s string
	switch kind {
	case game.Info:
		s = pterm.Info.Sprintln(text)
	case game.Success:
		s = pterm.Success.Sprintln(text)
	case game.Warning:
		s = pterm.Warning.Sprintln(text)
	case game.Error:
		s = pterm.Error.Sprintln(text)
	default:
		s = pterm.Sprintln(text)
	}
	fmt.Fprint(c.out, s)
}

// ShowProbabilities renders m as a table with one row and one column per die.
func (c *Console) ShowProbabilities(set []dice.Die, m probability.Matrix) {
	fmt.Fprint(c.out, pterm.Sprintln(TableCaption))
	table, err := pterm.DefaultTable.WithHasHeader().WithData(ProbabilityRows(m)).Srender()
	if err != nil {
		pterm.Error.WithWriter(c.out).Println(err)
		return
	}
	fmt.Fprintln(c.out, table)
	for i, d := range set {
		fmt.Fprintf(c.out, "  Dice_%d = %s\n", i+1, d)
	}
}

// ProbabilityRows formats m for a table: a header row "Dice#", 1..n and one
// row per die, with "-" on the diagonal.
func ProbabilityRows(m probability.Matrix) [][]string {
	n := m.Size()
	header := make([]string, 0, n+1)
	header = append(header, "Dice#")
	for j := 0; j < n; j++ {
		header = append(header, fmt.Sprint(j+1))
	}
	rows := [][]string{header}
	for i := 0; i < n; i++ {
		row := make([]string, 0, n+1)
		row = append(row, fmt.Sprint(i+1))
		for j := 0; j < n; j++ {
			p, ok := m.At(i, j)
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.3f", p))
		}
		rows = append(rows, row)
	}
	return rows
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
