package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToProperCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase name", "viraj", "Viraj"},
		{"already proper", "Viraj", "Viraj"},
		{"all caps", "VIRAJ", "Viraj"},
		{"single rune", "r", "R"},
		{"empty", "", ""},
		{"leading digit untouched", "1ram", "1ram"},
		{"multi-word only first rune", "ram kumar", "Ram kumar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToProperCase(tt.in))
		})
	}
}
