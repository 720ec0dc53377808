package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Astemirdum/e-library/library/internal/model"
)

var readerColumns = []string{
	"id", "full_name", "reader_type", "address", "date_of_birth",
	"card_created_at", "expired_date", "email", "user_id",
}

func (r *repository) ListReaders(ctx context.Context) ([]model.Reader, error) {
	query, args, err := qb.Select(readerColumns...).From(readersTableName).OrderBy("card_created_at").ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.Reader](ctx, r.db, query, args...)
}

func (r *repository) GetReader(ctx context.Context, id string) (model.Reader, error) {
	query, args, err := qb.Select(readerColumns...).From(readersTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.Reader{}, err
	}
	return collectOne[model.Reader](ctx, r.db, query, args...)
}

func (r *repository) CreateReader(ctx context.Context, rd model.Reader) (model.Reader, error) {
	if rd.ID == "" {
		rd.ID = uuid.NewString()
	}
	query, args, err := qb.Insert(readersTableName).
		Columns(readerColumns...).
		Values(rd.ID, rd.FullName, rd.ReaderType, rd.Address, rd.DateOfBirth,
			rd.CardCreatedAt, rd.ExpiredDate, rd.Email, rd.UserID).
		Suffix(returning(readerColumns)).
		ToSql()
	if err != nil {
		return model.Reader{}, err
	}
	return collectOne[model.Reader](ctx, r.db, query, args...)
}

func (r *repository) UpdateReader(ctx context.Context, rd model.Reader) (model.Reader, error) {
	query, args, err := qb.Update(readersTableName).
		SetMap(map[string]any{
			"full_name":       rd.FullName,
			"reader_type":     rd.ReaderType,
			"address":         rd.Address,
			"date_of_birth":   rd.DateOfBirth,
			"card_created_at": rd.CardCreatedAt,
			"expired_date":    rd.ExpiredDate,
			"email":           rd.Email,
			"user_id":         rd.UserID,
		}).
		Where(sq.Eq{"id": rd.ID}).
		Suffix(returning(readerColumns)).
		ToSql()
	if err != nil {
		return model.Reader{}, err
	}
	return collectOne[model.Reader](ctx, r.db, query, args...)
}

func (r *repository) DeleteReader(ctx context.Context, id string) error {
	return r.deleteByID(ctx, readersTableName, id)
}
