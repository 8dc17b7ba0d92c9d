package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		expected    mb.Coordinates
		expectedErr error
	}{
		{name: "valid", line: "1 1", expected: mb.NewCoordinates(0, 0)},
		{name: "extra spaces", line: "  3   6 ", expected: mb.NewCoordinates(2, 5)},
		{name: "off the board still parses", line: "7 9", expected: mb.NewCoordinates(6, 8)},
		{name: "zero becomes negative", line: "0 2", expected: mb.NewCoordinates(-1, 1)},
		{name: "single value", line: "3", expectedErr: errInputFormat},
		{name: "three values", line: "1 2 3", expectedErr: errInputFormat},
		{name: "empty line", line: "", expectedErr: errInputFormat},
		{name: "letters", line: "a 1", expectedErr: errInputNumbers},
		{name: "negative sign", line: "-1 2", expectedErr: errInputNumbers},
		{name: "overflow", line: "99999999999999999999999 1", expectedErr: errInputNumbers},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseCoordinates(test.line)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected error: %v\tgot: %v", test.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.expected {
				t.Fatalf("expected: %v\tgot: %v", test.expected, got)
			}
		})
	}
}

func TestHumanPlayerSelectTarget(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("hello\n1 x\n2 3\n")
	player := NewHumanPlayer("human", in, &out)

	target, err := player.SelectTarget()
	if err != nil {
		t.Fatal(err)
	}
	if target != mb.NewCoordinates(1, 2) {
		t.Fatalf("expected: %v\tgot: %v", mb.NewCoordinates(1, 2), target)
	}

	if prompts := strings.Count(out.String(), "Your move: "); prompts != 3 {
		t.Fatalf("expected prompts: %d\tgot: %d", 3, prompts)
	}
	if !strings.Contains(out.String(), errInputFormat.Error()) || !strings.Contains(out.String(), errInputNumbers.Error()) {
		t.Fatalf("expected both input errors to be shown, got:\n%s", out.String())
	}

	if _, err = player.SelectTarget(); !errors.Is(err, cerr.ErrInputExhausted) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrInputExhausted, err)
	}
}
