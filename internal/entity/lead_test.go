package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStatusFor - Verified exatamente a partir de 0.6
func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusVerified, StatusFor(0.73))
	assert.Equal(t, StatusVerified, StatusFor(0.6))
	assert.Equal(t, StatusVerified, StatusFor(1.0))
	assert.Equal(t, StatusToCheck, StatusFor(0.59))
	assert.Equal(t, StatusToCheck, StatusFor(0.4))
	assert.Equal(t, StatusToCheck, StatusFor(0))
}
