package validator

import (
	"fmt"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found. Warnings are allowed.
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Deck    *deck.Deck
	Results ValidationResults
}

func NewValidator(d *deck.Deck) *Validator {
	return &Validator{
		Deck:    d,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if v.Deck == nil {
		return v.Results, fmt.Errorf("no deck to validate")
	}

	v.validateSize()
	v.validatePositions()
	v.validateDuplicates()
	v.validateMissing()

	return v.Results, nil
}

// validateSize checks the size counter against the actual card count
func (v *Validator) validateSize() {
	if v.Deck.Size() != v.Deck.Len() {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck size %d does not match card count %d", v.Deck.Size(), v.Deck.Len()))
	}
}

// validatePositions reports cards whose recorded position is not their index
func (v *Validator) validatePositions() {
	for i, c := range v.Deck.Cards() {
		if !c.HasPosition() {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s at index %d has no position", c.Name, i))
			continue
		}
		if *c.Position != i {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s at index %d records stale position %d", c.Name, i, *c.Position))
		}
	}
}

// validateDuplicates reports repeated suit/value pairs
func (v *Validator) validateDuplicates() {
	seen := make(map[string]int)
	for i, c := range v.Deck.Cards() {
		if first, ok := seen[c.Name]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("duplicate %s at index %d (first at %d)", c.Name, i, first))
			continue
		}
		seen[c.Name] = i
	}
}

// validateMissing reports standard cards no longer in the deck
func (v *Validator) validateMissing() {
	for _, value := range card.Values() {
		for _, suit := range card.Suits() {
			c := card.Must(card.Options{Suit: suit, Value: value})
			if v.Deck.Index(c) == -1 {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("%s is missing", c.Name))
			}
		}
	}
}
