package game

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/luca-patrignani/mental-dice/domain/dice"
	"github.com/luca-patrignani/mental-dice/domain/probability"
	"github.com/luca-patrignani/mental-dice/fairness"
)

type line struct {
	kind MessageKind
	text string
}

// scriptedConsole replays canned answers and records everything printed.
type scriptedConsole struct {
	inputs  []string
	prompts []string
	lines   []line
	tables  int
}

func newScriptedConsole(inputs ...string) *scriptedConsole {
	return &scriptedConsole{inputs: inputs}
}

func (c *scriptedConsole) ReadLine(prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if len(c.inputs) == 0 {
		return "", io.EOF
	}
	in := c.inputs[0]
	c.inputs = c.inputs[1:]
	return in, nil
}

func (c *scriptedConsole) Print(kind MessageKind, text string) {
	c.lines = append(c.lines, line{kind: kind, text: text})
}

func (c *scriptedConsole) ShowProbabilities(set []dice.Die, m probability.Matrix) {
	c.tables++
}

func (c *scriptedConsole) output() string {
	var b strings.Builder
	for _, l := range c.lines {
		b.WriteString(l.text)
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *scriptedConsole) count(kind MessageKind, substr string) int {
	n := 0
	for _, l := range c.lines {
		if l.kind == kind && strings.Contains(l.text, substr) {
			n++
		}
	}
	return n
}

// scriptedCommitter hands out commitments to the given secret values in order.
type scriptedCommitter struct {
	t      *testing.T
	values []int
	ranges []int
}

func (s *scriptedCommitter) commit(n int) (*fairness.Commitment, error) {
	if len(s.values) == 0 {
		s.t.Fatalf("unexpected commitment over range %d", n)
	}
	v := s.values[0]
	s.values = s.values[1:]
	s.ranges = append(s.ranges, n)
	key := bytes.Repeat([]byte{byte(len(s.ranges))}, fairness.KeySize)
	return fairness.Commit(n, key, v)
}

func exampleDice(t *testing.T) []dice.Die {
	t.Helper()
	set, err := dice.Parse(strings.Fields(dice.Example))
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func newTestGame(t *testing.T, console Console, secrets ...int) (*Game, *scriptedCommitter) {
	t.Helper()
	sc := &scriptedCommitter{t: t, values: secrets}
	ids := 0
	g, err := New(exampleDice(t), console,
		WithCommitter(sc.commit),
		WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("round-%d", ids)
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	return g, sc
}

// blockingConsole replays its scripted answers, then blocks every further
// read until release is closed.
type blockingConsole struct {
	*scriptedConsole
	blocked chan struct{}
	release chan struct{}
}

func newBlockingConsole(t *testing.T, inputs ...string) *blockingConsole {
	c := &blockingConsole{
		scriptedConsole: newScriptedConsole(inputs...),
		blocked:         make(chan struct{}, 1),
		release:         make(chan struct{}),
	}
	t.Cleanup(func() { close(c.release) })
	return c
}

func (c *blockingConsole) ReadLine(prompt string) (string, error) {
	if len(c.inputs) > 0 {
		return c.scriptedConsole.ReadLine(prompt)
	}
	select {
	case c.blocked <- struct{}{}:
	default:
	}
	<-c.release
	return "", io.EOF
}
