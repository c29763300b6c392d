package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name     string
		supplied string
		secret   string
		wantErr  bool
	}{
		{"matching key", "secret-key", "secret-key", false},
		{"missing key", "", "secret-key", true},
		{"wrong key", "nope", "secret-key", true},
		{"case differs", "Secret-Key", "secret-key", true},
		{"trailing space", "secret-key ", "secret-key", true},
		{"empty secret and empty key", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authenticate(tt.supplied, tt.secret)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAPIKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
