package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenDenylist(t *testing.T) {
	mr := setupTestRedis()
	defer mr.Close()

	denied, err := IsDenylisted("some-token")
	assert.NoError(t, err)
	assert.False(t, denied)

	err = AddToDenylist("some-token", time.Hour)
	assert.NoError(t, err)

	denied, err = IsDenylisted("some-token")
	assert.NoError(t, err)
	assert.True(t, denied)

	// Expiry drops the entry.
	mr.FastForward(2 * time.Hour)
	denied, err = IsDenylisted("some-token")
	assert.NoError(t, err)
	assert.False(t, denied)
}
