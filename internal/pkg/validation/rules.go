// Package validation holds the input rules applied at user registration.
package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`

	// Mobile number pattern - 10 digits
	MobileNoPattern = `^\d{10}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	MobileNo *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	MobileNo: regexp.MustCompile(MobileNoPattern),
}

// IsValidEmail checks email format
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidMobileNo checks that a mobile number is exactly ten digits
func IsValidMobileNo(mobileNo string) bool {
	return CompiledPatterns.MobileNo.MatchString(mobileNo)
}

// IsValidPassword checks minimum password length
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}
