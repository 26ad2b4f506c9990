// Package menu is the selector and presenter around the three tasks. It
// prints the numbered menu, reads one choice, runs the chosen task against
// a console and prints its result with the historical wording.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"trio/internal/console"
)

// Choice identifies one task on the menu.
type Choice int

const (
	ChoiceWord   Choice = 1
	ChoiceMatrix Choice = 2
	ChoiceDigits Choice = 3
)

// ErrInvalidSelection is returned for anything that is not a listed choice.
var ErrInvalidSelection = errors.New("invalid selection")

// Item is one menu entry.
type Item struct {
	Choice      Choice
	Name        string
	Title       string
	Description string
}

// Items lists the tasks in menu order.
var Items = []Item{
	{
		Choice:      ChoiceWord,
		Name:        "word",
		Title:       "Longest Even-Length Word",
		Description: "Finds the longest word with an even number of characters in a sentence.",
	},
	{
		Choice:      ChoiceMatrix,
		Name:        "matrix",
		Title:       "Matrix Multiplication",
		Description: "Multiplies a 2x3 matrix by a 3x4 matrix and prints the 2x4 result.",
	},
	{
		Choice:      ChoiceDigits,
		Name:        "digits",
		Title:       "Validate Unique Digits",
		Description: "Checks that a 4-digit number has no repeated digits.",
	},
}

// String returns the short task name.
func (c Choice) String() string {
	for _, it := range Items {
		if it.Choice == c {
			return it.Name
		}
	}
	return fmt.Sprintf("choice(%d)", int(c))
}

// Lookup returns the menu item for c.
func Lookup(c Choice) (Item, error) {
	for _, it := range Items {
		if it.Choice == c {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %d", ErrInvalidSelection, int(c))
}

// ParseChoice reads a selection the way the prompt does: the leading
// integer counts, anything else is an invalid selection.
func ParseChoice(s string) (Choice, error) {
	n, err := console.ParseLeadingInt(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSelection, strings.TrimSpace(s))
	}
	it, err := Lookup(Choice(n))
	if err != nil {
		return 0, err
	}
	return it.Choice, nil
}

// Text renders the numbered menu, one item per line.
func Text() string {
	var sb strings.Builder
	for _, it := range Items {
		fmt.Fprintf(&sb, "%d. %s\n", int(it.Choice), it.Title)
	}
	return sb.String()
}

// ChoicePrompt asks for a selection.
func ChoicePrompt() string {
	return fmt.Sprintf("Enter choice (%d-%d): ", int(Items[0].Choice), int(Items[len(Items)-1].Choice))
}
