package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnumsAcceptExactValuesOnly(t *testing.T) {
	status, err := ParseUserStatus("ACTIVE")
	assert.NoError(t, err)
	assert.Equal(t, UserStatusActive, status)

	// Decoding is case sensitive and closed.
	_, err = ParseUserStatus("active")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)

	_, err = ParseUserRole("SUPERADMIN")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)

	_, err = ParseAccountType("GOLD")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)

	_, err = ParseLoanStatus("OPEN")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)

	_, err = ParseTransactionType("REFUND")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)

	_, err = ParsePaymentMethod("CHEQUE")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)

	_, err = ParseNotificationType("SPAM")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}

func TestTransactionTypeSign(t *testing.T) {
	assert.False(t, TransactionTypeDeposit.IsDebit())
	assert.False(t, TransactionTypeInterest.IsDebit())
	assert.True(t, TransactionTypeWithdrawal.IsDebit())
	assert.True(t, TransactionTypePayment.IsDebit())
	assert.True(t, TransactionTypeTransfer.IsDebit())
}
