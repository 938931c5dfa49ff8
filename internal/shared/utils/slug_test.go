package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "The Go Programming Language", "the-go-programming-language"},
		{"accented vowels", "Ficción Histórica", "ficcion-historica"},
		{"n with tilde", "Cien años de soledad", "cien-anos-de-soledad"},
		{"mixed punctuation", "Don Quijote: Parte I!", "don-quijote-parte-i"},
		{"extra whitespace", "  War   and   Peace  ", "war-and-peace"},
		{"already a slug", "clean-slug", "clean-slug"},
		{"numbers kept", "1984", "1984"},
		{"consecutive separators", "a -- b", "a-b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "anos", RemoveDiacritics("años"))
	assert.Equal(t, "creme brulee", RemoveDiacritics("crème brûlée"))
	assert.Equal(t, "plain", RemoveDiacritics("plain"))
}
