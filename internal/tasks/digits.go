package tasks

import (
	"errors"
	"fmt"
)

// Bounds of a 4-digit number.
const (
	MinFourDigit = 1000
	MaxFourDigit = 9999
)

// ErrOutOfRange is returned for numbers outside [MinFourDigit, MaxFourDigit].
var ErrOutOfRange = errors.New("please enter a valid 4-digit number")

// DuplicateDigitError reports the first digit found twice.
type DuplicateDigitError struct {
	Digit int
}

func (e *DuplicateDigitError) Error() string {
	return fmt.Sprintf("digit %d is repeated", e.Digit)
}

// Digits splits n into thousands, hundreds, tens and units. The result is
// only meaningful for 4-digit numbers.
func Digits(n int) [4]int {
	return [4]int{
		n / 1000,
		(n / 100) % 10,
		(n / 10) % 10,
		n % 10,
	}
}

// ValidateUniqueDigits returns nil when n is a 4-digit number whose digits
// are pairwise distinct. Otherwise it returns ErrOutOfRange or a
// *DuplicateDigitError naming the first repeated digit in index order.
func ValidateUniqueDigits(n int) error {
	if n < MinFourDigit || n > MaxFourDigit {
		return ErrOutOfRange
	}

	d := Digits(n)
	for i := 0; i < len(d); i++ {
		for j := i + 1; j < len(d); j++ {
			if d[i] == d[j] {
				return &DuplicateDigitError{Digit: d[i]}
			}
		}
	}
	return nil
}
