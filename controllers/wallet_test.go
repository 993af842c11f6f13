package controllers

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

const debitWalletSQL = `UPDATE "wallets" SET "amount"=amount - $1 WHERE user_id = $2 AND amount >= $3`

func TestDebitWalletSubtractsWithBalanceGuard(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(debitWalletSQL)).
		WithArgs(50.0, 7, 50.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := debitWallet(db, 7, 50.0)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitWalletInsufficientBalance(t *testing.T) {
	db, mock := newMockDB(t)

	// The guard rejects the debit in the database, not in application code,
	// so a concurrent debit between read and write cannot overdraw.
	mock.ExpectExec(regexp.QuoteMeta(debitWalletSQL)).
		WithArgs(500.0, 7, 500.0).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := debitWallet(db, 7, 500.0)
	assert.ErrorIs(t, err, errInsufficientFunds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitWalletPropagatesDBError(t *testing.T) {
	db, mock := newMockDB(t)

	boom := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta(debitWalletSQL)).
		WithArgs(10.0, 3, 10.0).
		WillReturnError(boom)

	err := debitWallet(db, 3, 10.0)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errInsufficientFunds)
	assert.NoError(t, mock.ExpectationsWereMet())
}
