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

var bookColumns = []string{
	"id", "name", "type", "author", "photo_urls", "publication_year", "publisher",
	"date_of_acquisition", "price", "ratings_average", "ratings_quantity", "description",
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).From(booksTableName).OrderBy("name").ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.Book](ctx, r.db, query, args...)
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return collectOne[model.Book](ctx, r.db, query, args...)
}

func (r *repository) CreateBook(ctx context.Context, b model.Book) (model.Book, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.PhotoURLs == nil {
		b.PhotoURLs = []string{}
	}
	query, args, err := qb.Insert(booksTableName).
		Columns(bookColumns...).
		Values(b.ID, b.Name, b.Type, b.Author, b.PhotoURLs, b.PublicationYear, b.Publisher,
			b.DateOfAcquisition, b.Price, b.RatingsAverage, b.RatingsQuantity, b.Description).
		Suffix(returning(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return collectOne[model.Book](ctx, r.db, query, args...)
}

func (r *repository) UpdateBook(ctx context.Context, b model.Book) (model.Book, error) {
	if b.PhotoURLs == nil {
		b.PhotoURLs = []string{}
	}
	query, args, err := qb.Update(booksTableName).
		SetMap(map[string]any{
			"name":                b.Name,
			"type":                b.Type,
			"author":              b.Author,
			"photo_urls":          b.PhotoURLs,
			"publication_year":    b.PublicationYear,
			"publisher":           b.Publisher,
			"date_of_acquisition": b.DateOfAcquisition,
			"price":               b.Price,
			"ratings_average":     b.RatingsAverage,
			"ratings_quantity":    b.RatingsQuantity,
			"description":         b.Description,
		}).
		Where(sq.Eq{"id": b.ID}).
		Suffix(returning(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return collectOne[model.Book](ctx, r.db, query, args...)
}

func (r *repository) DeleteBook(ctx context.Context, id string) error {
	reviewsQuery, reviewsArgs, err := qb.Delete(reviewsTableName).Where(sq.Eq{"book_id": id}).ToSql()
	if err != nil {
		return err
	}
	bookQuery, bookArgs, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, reviewsQuery, reviewsArgs...)
		if err != nil {
			return err
		}
		r.log.Debug("delete book reviews", zap.String("book", id), zap.Int64("n", tag.RowsAffected()))
		tag, err = tx.Exec(ctx, bookQuery, bookArgs...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}

// CountBooks counts books that have an author.
func (r *repository) CountBooks(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `select count(*) from books where author <> ''`).Scan(&n)
	return n, err
}

func (r *repository) BookPhotoCount(ctx context.Context, id string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`select coalesce(array_length(photos, 1), 0) from books where id = @id`,
		pgx.NamedArgs{"id": id}).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, errs.ErrNotFound
	}
	return n, mapErr(err)
}

func (r *repository) SetBookPhotos(ctx context.Context, id string, photos [][]byte, urls []string) (model.Book, error) {
	if photos == nil {
		photos = [][]byte{}
	}
	if urls == nil {
		urls = []string{}
	}
	query, args, err := qb.Update(booksTableName).
		Set("photos", photos).
		Set("photo_urls", urls).
		Where(sq.Eq{"id": id}).
		Suffix(returning(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return collectOne[model.Book](ctx, r.db, query, args...)
}

// GetBookPhoto returns the photo at the zero-based index.
func (r *repository) GetBookPhoto(ctx context.Context, id string, index int) ([]byte, error) {
	var photo []byte
	err := r.db.QueryRow(ctx,
		`select photos[@idx] from books where id = @id`,
		pgx.NamedArgs{"id": id, "idx": index + 1}).Scan(&photo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, mapErr(err)
	}
	if len(photo) == 0 {
		return nil, errs.ErrNoPhoto
	}
	return photo, nil
}
