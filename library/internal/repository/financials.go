package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
)

var (
	financialsColumns  = []string{"id", "user_id", "money", "total_debt"}
	transactionColumns = []string{"id", "user_financials_id", "money", "status", "created_at"}
	feeReceiptColumns  = []string{"id", "user_financials_id", "balance", "total_debt", "amount_paid"}
)

func (r *repository) ListFinancials(ctx context.Context) ([]model.UserFinancials, error) {
	query, args, err := qb.Select(financialsColumns...).From(financialsTableName).ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.UserFinancials](ctx, r.db, query, args...)
}

func (r *repository) GetFinancials(ctx context.Context, id string) (model.UserFinancials, error) {
	query, args, err := qb.Select(financialsColumns...).From(financialsTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.UserFinancials{}, err
	}
	return collectOne[model.UserFinancials](ctx, r.db, query, args...)
}

func (r *repository) GetFinancialsByUser(ctx context.Context, userID string) (model.UserFinancials, error) {
	query, args, err := qb.Select(financialsColumns...).From(financialsTableName).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return model.UserFinancials{}, err
	}
	f, err := collectOne[model.UserFinancials](ctx, r.db, query, args...)
	if errors.Is(err, errs.ErrNotFound) {
		return f, errs.ErrFinancialsNotFound
	}
	return f, err
}

func (r *repository) CreateFinancials(ctx context.Context, f model.UserFinancials) (model.UserFinancials, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	query, args, err := qb.Insert(financialsTableName).
		Columns(financialsColumns...).
		Values(f.ID, f.UserID, f.Money, f.TotalDebt).
		Suffix(returning(financialsColumns)).
		ToSql()
	if err != nil {
		return model.UserFinancials{}, err
	}
	return collectOne[model.UserFinancials](ctx, r.db, query, args...)
}

func (r *repository) UpdateFinancials(ctx context.Context, f model.UserFinancials) (model.UserFinancials, error) {
	query, args, err := qb.Update(financialsTableName).
		Set("user_id", f.UserID).
		Set("money", f.Money).
		Set("total_debt", f.TotalDebt).
		Where(sq.Eq{"id": f.ID}).
		Suffix(returning(financialsColumns)).
		ToSql()
	if err != nil {
		return model.UserFinancials{}, err
	}
	return collectOne[model.UserFinancials](ctx, r.db, query, args...)
}

func (r *repository) DeleteFinancials(ctx context.Context, id string) error {
	return r.deleteByID(ctx, financialsTableName, id)
}

func (r *repository) ListTransactions(ctx context.Context) ([]model.UserTransaction, error) {
	query, args, err := qb.Select(transactionColumns...).From(transactionsTableName).OrderBy("created_at").ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.UserTransaction](ctx, r.db, query, args...)
}

func (r *repository) GetTransaction(ctx context.Context, id string) (model.UserTransaction, error) {
	query, args, err := qb.Select(transactionColumns...).From(transactionsTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.UserTransaction{}, err
	}
	return collectOne[model.UserTransaction](ctx, r.db, query, args...)
}

func (r *repository) CreateTransaction(ctx context.Context, t model.UserTransaction) (model.UserTransaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	query, args, err := qb.Insert(transactionsTableName).
		Columns(transactionColumns...).
		Values(t.ID, t.UserFinancialsID, t.Money, t.Status, t.CreatedAt).
		Suffix(returning(transactionColumns)).
		ToSql()
	if err != nil {
		return model.UserTransaction{}, err
	}
	return collectOne[model.UserTransaction](ctx, r.db, query, args...)
}

func (r *repository) UpdateTransaction(ctx context.Context, t model.UserTransaction) (model.UserTransaction, bool, error) {
	query, args, err := qb.Update(transactionsTableName).
		Set("user_financials_id", t.UserFinancialsID).
		Set("money", t.Money).
		Set("status", t.Status).
		Where(sq.Eq{"id": t.ID}).
		Suffix(returning(transactionColumns)).
		ToSql()
	if err != nil {
		return model.UserTransaction{}, false, err
	}

	lockQuery, lockArgs, err := qb.Select("status").
		From(transactionsTableName).
		Where(sq.Eq{"id": t.ID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return model.UserTransaction{}, false, err
	}

	var (
		updated  model.UserTransaction
		credited bool
	)
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		var prev model.TransactionStatus
		if err := tx.QueryRow(ctx, lockQuery, lockArgs...).Scan(&prev); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrNotFound
			}
			return mapErr(err)
		}
		var err error
		if updated, err = collectOne[model.UserTransaction](ctx, tx, query, args...); err != nil {
			return err
		}
		if prev == model.TransactionSuccess || updated.Status != model.TransactionSuccess {
			return nil
		}
		creditQuery, creditArgs, err := qb.Update(financialsTableName).
			Set("money", sq.Expr("money + ?", updated.Money)).
			Where(sq.Eq{"id": updated.UserFinancialsID}).
			ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, creditQuery, creditArgs...)
		if err != nil {
			return mapErr(err)
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrFinancialsNotFound
		}
		credited = true
		return nil
	})
	if err != nil {
		return model.UserTransaction{}, false, err
	}
	if credited {
		r.log.Info("transaction credited",
			zap.String("transaction", updated.ID),
			zap.String("financials", updated.UserFinancialsID),
			zap.String("amount", updated.Money.String()))
	}
	return updated, credited, nil
}

func (r *repository) DeleteTransaction(ctx context.Context, id string) error {
	return r.deleteByID(ctx, transactionsTableName, id)
}

func (r *repository) ListFeeReceipts(ctx context.Context) ([]model.FeeReceipt, error) {
	query, args, err := qb.Select(feeReceiptColumns...).From(feeReceiptsTableName).ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.FeeReceipt](ctx, r.db, query, args...)
}

func (r *repository) GetFeeReceipt(ctx context.Context, id string) (model.FeeReceipt, error) {
	query, args, err := qb.Select(feeReceiptColumns...).From(feeReceiptsTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.FeeReceipt{}, err
	}
	return collectOne[model.FeeReceipt](ctx, r.db, query, args...)
}

func (r *repository) CreateFeeReceipt(ctx context.Context, fr model.FeeReceipt) (model.FeeReceipt, error) {
	if fr.ID == "" {
		fr.ID = uuid.NewString()
	}
	query, args, err := qb.Insert(feeReceiptsTableName).
		Columns(feeReceiptColumns...).
		Values(fr.ID, fr.UserFinancialsID, fr.Balance, fr.TotalDebt, fr.AmountPaid).
		Suffix(returning(feeReceiptColumns)).
		ToSql()
	if err != nil {
		return model.FeeReceipt{}, err
	}

	var created model.FeeReceipt
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		if created, err = collectOne[model.FeeReceipt](ctx, tx, query, args...); err != nil {
			return err
		}
		debitQuery, debitArgs, err := qb.Update(financialsTableName).
			Set("money", sq.Expr("money - ?", created.AmountPaid)).
			Set("total_debt", sq.Expr("total_debt - ?", created.AmountPaid)).
			Where(sq.Eq{"id": created.UserFinancialsID}).
			ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, debitQuery, debitArgs...)
		if err != nil {
			return mapErr(err)
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrFinancialsNotFound
		}
		return nil
	})
	if err != nil {
		return model.FeeReceipt{}, err
	}
	return created, nil
}

func (r *repository) DeleteFeeReceipt(ctx context.Context, id string) error {
	return r.deleteByID(ctx, feeReceiptsTableName, id)
}
