package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReferenceNumber(t *testing.T) {
	ref := NewReferenceNumber("TXN")
	assert.True(t, strings.HasPrefix(ref, "TXN"))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		r := NewReferenceNumber("RCP")
		assert.False(t, seen[r], "reference numbers must not repeat")
		seen[r] = true
	}
}
