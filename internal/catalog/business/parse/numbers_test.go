package parse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain integer", "15", 15},
		{"decimal comma truncates", "12,0", 12},
		{"decimal dot truncates", "7.9", 7},
		{"thousands separator", "1 234", 1234},
		{"empty", "", 0},
		{"non numeric", "нема", 0},
		{"symbols only", "--", 0},
		{"overflow", "99999999999999999999999999999999", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuantity(tt.raw))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "120", "120"},
		{"decimal comma", "45,90", "45.9"},
		{"currency suffix and spaces", "1 234,56 грн", "1234.56"},
		{"currency symbol", "$19.99", "19.99"},
		{"empty", "", "0"},
		{"symbols only", "грн", "0"},
		{"two separators", "1.2.3", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := decimal.RequireFromString(tt.want)
			got := ParseAmount(tt.raw)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}
