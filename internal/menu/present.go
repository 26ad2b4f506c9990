package menu

import (
	"errors"
	"fmt"
	"strconv"

	"trio/internal/tasks"
)

// Prompts and messages shown to the user.
const (
	SentencePrompt = "Enter a sentence: "
	NumberPrompt   = "Enter a 4-digit number: "

	NoEvenWordMessage    = "No even-length word found."
	MatrixHeader         = "Resulting 2x4 matrix:"
	OutOfRangeMessage    = "Please enter a valid 4-digit number."
	AcceptedMessage      = "Accepted"
	InvalidChoiceMessage = "Invalid choice!"
)

// Outcome labels used in audit events.
const (
	OutcomeFound      = "found"
	OutcomeNotFound   = "not_found"
	OutcomeComputed   = "computed"
	OutcomeAccepted   = "accepted"
	OutcomeOutOfRange = "out_of_range"
	OutcomeDuplicate  = "duplicate"
)

// FormatWord renders the word task result.
func FormatWord(word string, ok bool) string {
	if !ok {
		return NoEvenWordMessage
	}
	return fmt.Sprintf("Longest even-length word: \"%s\"", word)
}

// FormatMatrix renders the matrix task result as a header line followed by
// the one-line matrix.
func FormatMatrix(m tasks.Matrix2x4) string {
	return MatrixHeader + "\n" + m.String()
}

// FormatDigits renders the digit check result.
func FormatDigits(err error) string {
	var dup *tasks.DuplicateDigitError
	switch {
	case err == nil:
		return AcceptedMessage
	case errors.As(err, &dup):
		return fmt.Sprintf("\"%d\" repeated enter all different", dup.Digit)
	default:
		return OutOfRangeMessage
	}
}

// WordOutcome classifies a word result for auditing.
func WordOutcome(word string, ok bool) (outcome, detail string) {
	if !ok {
		return OutcomeNotFound, ""
	}
	return OutcomeFound, word
}

// DigitsOutcome classifies a digit check result for auditing.
func DigitsOutcome(err error) (outcome, detail string) {
	var dup *tasks.DuplicateDigitError
	switch {
	case err == nil:
		return OutcomeAccepted, ""
	case errors.As(err, &dup):
		return OutcomeDuplicate, strconv.Itoa(dup.Digit)
	default:
		return OutcomeOutOfRange, ""
	}
}
