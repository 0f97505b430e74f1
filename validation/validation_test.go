package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "gerry@example.com", false},
		{"valid with subdomain", "gerry@mail.example.com", false},
		{"valid with plus", "gerry+games@example.com", false},
		{"empty", "", true},
		{"missing at", "gerry.example.com", true},
		{"missing tld", "gerry@example", true},
		{"spaces", "gerry ariella@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"letters and digits", "passw0rd", false},
		{"minimum length", "abc123", false},
		{"empty", "", true},
		{"too short", "ab12", true},
		{"letters only", "password", true},
		{"digits only", "123456", true},
		{"special characters", "pass-w0rd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("title", "My title"))
	assert.Error(t, ValidateRequired("title", ""))
}
