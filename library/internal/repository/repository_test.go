package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
)

const (
	lockTransactionSQL   = "SELECT status FROM user_transactions WHERE id = $1 FOR UPDATE"
	updateTransactionSQL = "UPDATE user_transactions SET user_financials_id = $1, money = $2, status = $3 WHERE id = $4"
	creditSQL            = "UPDATE user_financials SET money = money + $1 WHERE id = $2"
	insertFeeReceiptSQL  = "INSERT INTO fee_receipts"
	debitSQL             = "UPDATE user_financials SET money = money - $1, total_debt = total_debt - $2 WHERE id = $3"
	deleteReviewsSQL     = "DELETE FROM reviews WHERE book_id = $1"
	deleteBookSQL        = "DELETE FROM books WHERE id = $1"
)

// decimalArg matches a numeric argument by value, ignoring its scale.
type decimalArg struct {
	want decimal.Decimal
}

func (a decimalArg) Match(v any) bool {
	switch d := v.(type) {
	case decimal.Decimal:
		return d.Equal(a.want)
	case string:
		got, err := decimal.NewFromString(d)
		return err == nil && got.Equal(a.want)
	}
	return false
}

func newMockRepo(t *testing.T) (*repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	repo, err := NewRepository(mock, zap.NewNop())
	require.NoError(t, err)
	return repo, mock
}

func sql(s string) string {
	return regexp.QuoteMeta(s)
}

func TestRepository_UpdateTransaction(t *testing.T) {
	var (
		txID      = "8e0f3c6b-94c5-4c9c-a6f7-1f1d1b3c0a01"
		finID     = "3b9d7c1e-5a0e-4d5c-9a3f-2b7e6c4d8f02"
		amount    = decimal.RequireFromString("12.50")
		createdAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	)
	row := func(status model.TransactionStatus) *pgxmock.Rows {
		return pgxmock.NewRows(transactionColumns).
			AddRow(txID, finID, amount, status, createdAt)
	}
	lock := func(m pgxmock.PgxPoolIface, prev model.TransactionStatus) {
		m.ExpectBegin()
		m.ExpectQuery(sql(lockTransactionSQL)).
			WithArgs(txID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(prev))
	}

	tests := []struct {
		name         string
		status       model.TransactionStatus
		expect       func(m pgxmock.PgxPoolIface)
		wantCredited bool
		wantErr      error
	}{
		{
			name:   "credits balance by amount",
			status: model.TransactionSuccess,
			expect: func(m pgxmock.PgxPoolIface) {
				lock(m, model.TransactionFailure)
				m.ExpectQuery(sql(updateTransactionSQL)).WillReturnRows(row(model.TransactionSuccess))
				m.ExpectExec(sql(creditSQL)).
					WithArgs(decimalArg{want: amount}, finID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				m.ExpectCommit()
			},
			wantCredited: true,
		},
		{
			name:   "already success is not credited twice",
			status: model.TransactionSuccess,
			expect: func(m pgxmock.PgxPoolIface) {
				lock(m, model.TransactionSuccess)
				m.ExpectQuery(sql(updateTransactionSQL)).WillReturnRows(row(model.TransactionSuccess))
				m.ExpectCommit()
			},
		},
		{
			name:   "failure status is not credited",
			status: model.TransactionFailure,
			expect: func(m pgxmock.PgxPoolIface) {
				lock(m, model.TransactionFailure)
				m.ExpectQuery(sql(updateTransactionSQL)).WillReturnRows(row(model.TransactionFailure))
				m.ExpectCommit()
			},
		},
		{
			name:   "missing financials rolls back",
			status: model.TransactionSuccess,
			expect: func(m pgxmock.PgxPoolIface) {
				lock(m, model.TransactionFailure)
				m.ExpectQuery(sql(updateTransactionSQL)).WillReturnRows(row(model.TransactionSuccess))
				m.ExpectExec(sql(creditSQL)).
					WithArgs(decimalArg{want: amount}, finID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				m.ExpectRollback()
			},
			wantErr: errs.ErrFinancialsNotFound,
		},
		{
			name:   "missing transaction",
			status: model.TransactionSuccess,
			expect: func(m pgxmock.PgxPoolIface) {
				m.ExpectBegin()
				m.ExpectQuery(sql(lockTransactionSQL)).WithArgs(txID).WillReturnError(pgx.ErrNoRows)
				m.ExpectRollback()
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.expect(mock)

			updated, credited, err := repo.UpdateTransaction(context.Background(), model.UserTransaction{
				ID:               txID,
				UserFinancialsID: finID,
				Money:            amount,
				Status:           tt.status,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.False(t, credited)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.wantCredited, credited)
				require.Equal(t, tt.status, updated.Status)
				require.True(t, amount.Equal(updated.Money))
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateFeeReceipt(t *testing.T) {
	var (
		receiptID = "5c2a9e4d-7b1f-4e3a-8d6c-0f9b2a1e3d03"
		finID     = "3b9d7c1e-5a0e-4d5c-9a3f-2b7e6c4d8f02"
		debt      = decimal.RequireFromString("40")
		paid      = decimal.RequireFromString("15.25")
	)
	receipt := model.FeeReceipt{
		ID:               receiptID,
		UserFinancialsID: finID,
		Balance:          "library fee",
		TotalDebt:        debt,
		AmountPaid:       paid,
	}
	inserted := func() *pgxmock.Rows {
		return pgxmock.NewRows(feeReceiptColumns).
			AddRow(receiptID, finID, "library fee", debt, paid)
	}

	tests := []struct {
		name    string
		expect  func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "debits money and debt",
			expect: func(m pgxmock.PgxPoolIface) {
				m.ExpectBegin()
				m.ExpectQuery(sql(insertFeeReceiptSQL)).WillReturnRows(inserted())
				m.ExpectExec(sql(debitSQL)).
					WithArgs(decimalArg{want: paid}, decimalArg{want: paid}, finID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				m.ExpectCommit()
			},
		},
		{
			name: "missing financials rolls back insert",
			expect: func(m pgxmock.PgxPoolIface) {
				m.ExpectBegin()
				m.ExpectQuery(sql(insertFeeReceiptSQL)).WillReturnRows(inserted())
				m.ExpectExec(sql(debitSQL)).
					WithArgs(decimalArg{want: paid}, decimalArg{want: paid}, finID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				m.ExpectRollback()
			},
			wantErr: errs.ErrFinancialsNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.expect(mock)

			created, err := repo.CreateFeeReceipt(context.Background(), receipt)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, receiptID, created.ID)
				require.True(t, decimal.RequireFromString("24.75").Equal(created.RemainingBalance()))
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DeleteBook(t *testing.T) {
	const bookID = "9a7e1c3b-2d4f-4a6b-8c0e-1f3a5b7d9e04"

	tests := []struct {
		name    string
		expect  func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "removes reviews with the book",
			expect: func(m pgxmock.PgxPoolIface) {
				m.ExpectBegin()
				m.ExpectExec(sql(deleteReviewsSQL)).WithArgs(bookID).
					WillReturnResult(pgxmock.NewResult("DELETE", 3))
				m.ExpectExec(sql(deleteBookSQL)).WithArgs(bookID).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				m.ExpectCommit()
			},
		},
		{
			name: "missing book rolls back",
			expect: func(m pgxmock.PgxPoolIface) {
				m.ExpectBegin()
				m.ExpectExec(sql(deleteReviewsSQL)).WithArgs(bookID).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				m.ExpectExec(sql(deleteBookSQL)).WithArgs(bookID).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				m.ExpectRollback()
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.expect(mock)

			err := repo.DeleteBook(context.Background(), bookID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
