// Package deck parses flashcard deck files. A deck is a JSON array of
// card objects: [{"front": "...", "back": "...", "hint": "...", "tags": [...]}].
package deck

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mlindgren/cardbox/internal/models"
)

type entry struct {
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Hint  string   `json:"hint"`
	Tags  []string `json:"tags"`
}

// Parse reads a JSON deck and returns its cards in file order. Entries
// with an empty front or back make the whole deck invalid.
func Parse(r io.Reader) ([]models.Card, error) {
	var entries []entry
	dec := json.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}

	cards := make([]models.Card, 0, len(entries))
	for i, e := range entries {
		card, err := models.NewCard(e.Front, e.Back, e.Hint, e.Tags)
		if err != nil {
			return nil, fmt.Errorf("deck entry %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ParseFile parses the deck file at the given path.
func ParseFile(path string) ([]models.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
