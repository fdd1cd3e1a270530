package dice

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantDice  int
		wantErr   error
		wantIndex int
	}{
		{
			name:     "worked example",
			args:     strings.Fields(Example),
			wantDice: 3,
		},
		{
			name:     "four dice with different sizes",
			args:     []string{"1", "1,2", "3,3,3", "-1,0,7,100"},
			wantDice: 4,
		},
		{
			name:     "spaces around values",
			args:     []string{"1, 2", " 3 ,4", "5,6 "},
			wantDice: 3,
		},
		{
			name:      "too few dice",
			args:      []string{"1,2", "3,4"},
			wantErr:   ErrTooFewDice,
			wantIndex: -1,
		},
		{
			name:      "no dice",
			args:      nil,
			wantErr:   ErrTooFewDice,
			wantIndex: -1,
		},
		{
			name:      "empty die",
			args:      []string{"1,2", "", "3,4"},
			wantErr:   ErrEmptySpec,
			wantIndex: 1,
		},
		{
			name:      "float face",
			args:      []string{"1,2", "3,4", "5,6.5"},
			wantErr:   ErrNonInteger,
			wantIndex: 2,
		},
		{
			name:      "word face",
			args:      []string{"a,b", "3,4", "5,6"},
			wantErr:   ErrNonInteger,
			wantIndex: 0,
		},
		{
			name:      "trailing comma",
			args:      []string{"1,2,", "3,4", "5,6"},
			wantErr:   ErrNonInteger,
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("expected *ParseError, got %T", err)
				}
				if perr.Index != tt.wantIndex {
					t.Errorf("expected index %d, got %d", tt.wantIndex, perr.Index)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(set) != tt.wantDice {
				t.Errorf("expected %d dice, got %d", tt.wantDice, len(set))
			}
		})
	}
}

func TestParseWorkedExampleFaces(t *testing.T) {
	set, err := Parse(strings.Fields(Example))
	if err != nil {
		t.Fatal(err)
	}
	for i, d := range set {
		if d.Size() != 6 {
			t.Errorf("die %d: expected 6 faces, got %d", i, d.Size())
		}
	}
	if set[1].String() != "[6,8,1,1,8,6]" {
		t.Errorf("unexpected second die %s", set[1])
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse([]string{"1,2", "3,4", "5,x"})
	if err == nil || err.Error() != "dice #3 die contains non-integer values: '5,x'" {
		t.Errorf("unexpected message %v", err)
	}
}

func TestUsage(t *testing.T) {
	u := Usage("mental-dice")
	if !strings.Contains(u, "mental-dice "+Example) {
		t.Errorf("usage must contain the worked example:\n%s", u)
	}
}
