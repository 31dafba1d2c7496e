package customer

import (
	"errors"
	"regexp"
)

// Accepts "+<country>" prefixes and the common 10-15 digit formats with
// optional space/dash separators or a parenthesised area code.
var phoneRe = regexp.MustCompile(`^\+?\d{1,3}[- ]?(\d{3}[- ]?\d{3}[- ]?\d{4}|\(\d{3}\)[- ]?\d{3}[- ]?\d{4}|\d{10,15})$`)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var (
	ErrInvalidEmail = errors.New("Enter a valid email address.")
	ErrInvalidPhone = errors.New("Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed.")
)

// ValidateEmail checks basic email shape (local@domain.tld).
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePhone checks the phone format. Empty phones are the caller's call.
func ValidatePhone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}
