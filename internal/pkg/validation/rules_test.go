package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("student@campus.edu"))
	assert.True(t, IsValidEmail("first.last@sub.campus.lk"))
	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidMobileNo(t *testing.T) {
	assert.True(t, IsValidMobileNo("0771234567"))
	assert.False(t, IsValidMobileNo("12345"))
	assert.False(t, IsValidMobileNo("07712345678"))
	assert.False(t, IsValidMobileNo("07712345ab"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("longenough"))
	assert.False(t, IsValidPassword("short"))
}
