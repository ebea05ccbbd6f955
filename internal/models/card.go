package models

import "fmt"

// Card is an immutable flashcard. Two cards with the same front and back
// are the same card for scheduling purposes, regardless of hint or tags.
type Card struct {
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Hint  string   `json:"hint,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// CardKey is the content identity of a card, usable as a map key.
type CardKey struct {
	Front string
	Back  string
}

// NewCard validates and builds a card. Front and back must be non-empty;
// hint and tags may be empty.
func NewCard(front, back, hint string, tags []string) (Card, error) {
	if front == "" {
		return Card{}, fmt.Errorf("card front must not be empty")
	}
	if back == "" {
		return Card{}, fmt.Errorf("card back must not be empty")
	}
	return Card{Front: front, Back: back, Hint: hint, Tags: tags}, nil
}

// Key returns the content identity of the card.
func (c Card) Key() CardKey {
	return CardKey{Front: c.Front, Back: c.Back}
}

func (k CardKey) String() string {
	return fmt.Sprintf("%s / %s", k.Front, k.Back)
}
