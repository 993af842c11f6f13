package controllers

import (
	"testing"
	"time"

	"clinic-connect/configuration"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const revenueSQL = `SELECT SUM\(total_amount\) as total_revenue FROM "invoices"`

func TestRevenueBetweenSumsPaidInvoices(t *testing.T) {
	db, mock := newMockDB(t)
	old := configuration.DB
	configuration.DB = db
	t.Cleanup(func() { configuration.DB = old })

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(revenueSQL).
		WithArgs("Paid", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"total_revenue"}).AddRow(249.5))

	total, err := revenueBetween(start, end)
	require.NoError(t, err)
	require.NotNil(t, total)
	assert.Equal(t, 249.5, *total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueBetweenEmptyWindowIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	old := configuration.DB
	configuration.DB = db
	t.Cleanup(func() { configuration.DB = old })

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(revenueSQL).
		WithArgs("Paid", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"total_revenue"}).AddRow(nil))

	total, err := revenueBetween(start, end)
	require.NoError(t, err)
	assert.Nil(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
