package models

import (
	"encoding"
	"errors"
	"fmt"
)

// Outcome is the learner's self-reported recall difficulty for one review.
type Outcome int

const (
	Wrong Outcome = iota // Failed to recall; card drops back to bucket 0.
	Hard                 // Recalled with difficulty; card moves up one bucket.
	Easy                 // Recalled easily; card moves up two buckets.
)

// ErrInvalidOutcome is returned when an outcome value or name is not one of
// Wrong, Hard, Easy. Check with errors.Is.
var ErrInvalidOutcome = errors.New("invalid review outcome")

var outcomeNames = [...]string{Wrong: "wrong", Hard: "hard", Easy: "easy"}

var outcomeByName = map[string]Outcome{
	"wrong": Wrong,
	"hard":  Hard,
	"easy":  Easy,
}

var (
	_ fmt.Stringer             = Outcome(0)
	_ encoding.TextMarshaler   = Outcome(0)
	_ encoding.TextUnmarshaler = (*Outcome)(nil)
)

// IsValid reports whether o is one of the three defined outcomes.
func (o Outcome) IsValid() bool {
	return o >= Wrong && o <= Easy
}

func (o Outcome) String() string {
	if o.IsValid() {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// ParseOutcome converts a wire name ("wrong", "hard", "easy") into an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	if o, ok := outcomeByName[s]; ok {
		return o, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOutcome, int(o))
	}
	return []byte(outcomeNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	v, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
