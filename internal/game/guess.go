package game

import "errors"

var (
	ErrMalformedGuess  = errors.New("guess must be exactly 4 digits")
	ErrDuplicateDigits = errors.New("guess has repeated digits")
)

// ValidateGuess checks shape first, then duplicate-freedom.
func ValidateGuess(s string) error {
	if !valid4Digits(s) {
		return ErrMalformedGuess
	}

	var cnt [10]int
	for i := 0; i < len(s); i++ {
		d := s[i] - '0'
		cnt[d]++
		if cnt[d] > 1 {
			return ErrDuplicateDigits
		}
	}
	return nil
}

func valid4Digits(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for i := 0; i < CodeLength; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
