package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCleanNames - Limpeza do texto cru: trim, tokens vazios fora, ordem mantida
func TestCleanNames(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		delimiter string
		expected  []string
	}{
		{"batch normal", "Peter, Aditi, Ravi", ",", []string{"Peter", "Aditi", "Ravi"}},
		{"token vazio no meio", "Peter, Aditi, , Ravi", ",", []string{"Peter", "Aditi", "Ravi"}},
		{"espaços em volta", "  Peter  ,  Aditi  ", ",", []string{"Peter", "Aditi"}},
		{"string vazia", "", ",", []string{}},
		{"só delimitadores", ", ,, ", ",", []string{}},
		{"um nome", "Satoshi", ",", []string{"Satoshi"}},
		{"delimitador customizado", "Peter; Aditi", ";", []string{"Peter", "Aditi"}},
		{"delimitador vazio usa o default", "Peter, Aditi", "", []string{"Peter", "Aditi"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanNames(tc.raw, tc.delimiter))
		})
	}
}
