package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
)

var reviewColumns = []string{"id", "review", "rating", "book_id", "user_id", "created_at"}

const recalcRatingsQuery = `
update books
set ratings_quantity = s.cnt,
    ratings_average  = round(s.avg, 1)
from (select count(*) as cnt, coalesce(avg(rating), 0) as avg from reviews where book_id = @book) s
where books.id = @book`

func recalcRatings(ctx context.Context, tx pgx.Tx, bookID string) error {
	_, err := tx.Exec(ctx, recalcRatingsQuery, pgx.NamedArgs{"book": bookID})
	return err
}

// ListReviews returns all reviews, or the reviews of one book when bookID is set.
func (r *repository) ListReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	b := qb.Select(reviewColumns...).From(reviewsTableName).OrderBy("created_at")
	if bookID != "" {
		b = b.Where(sq.Eq{"book_id": bookID})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.Review](ctx, r.db, query, args...)
}

func (r *repository) GetReview(ctx context.Context, id string) (model.Review, error) {
	query, args, err := qb.Select(reviewColumns...).From(reviewsTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.Review{}, err
	}
	return collectOne[model.Review](ctx, r.db, query, args...)
}

func (r *repository) CreateReview(ctx context.Context, rv model.Review) (model.Review, error) {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	query, args, err := qb.Insert(reviewsTableName).
		Columns(reviewColumns...).
		Values(rv.ID, rv.Review, rv.Rating, rv.BookID, rv.UserID, rv.CreatedAt).
		Suffix(returning(reviewColumns)).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var created model.Review
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if created, err = collectOne[model.Review](ctx, tx, query, args...); err != nil {
			return err
		}
		return recalcRatings(ctx, tx, created.BookID)
	})
	return created, err
}

func (r *repository) UpdateReview(ctx context.Context, rv model.Review) (model.Review, error) {
	query, args, err := qb.Update(reviewsTableName).
		Set("review", rv.Review).
		Set("rating", rv.Rating).
		Where(sq.Eq{"id": rv.ID}).
		Suffix(returning(reviewColumns)).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var updated model.Review
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if updated, err = collectOne[model.Review](ctx, tx, query, args...); err != nil {
			return err
		}
		return recalcRatings(ctx, tx, updated.BookID)
	})
	return updated, err
}

func (r *repository) DeleteReview(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var bookID string
		err := tx.QueryRow(ctx, `delete from reviews where id = @id returning book_id`,
			pgx.NamedArgs{"id": id}).Scan(&bookID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		return recalcRatings(ctx, tx, bookID)
	})
}
