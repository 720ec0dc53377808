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

var userColumns = []string{"id", "first_name", "last_name", "email", "password_hash", "role", "active", "created_at"}

// ListUsers skips deactivated accounts.
func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query, args, err := qb.Select(userColumns...).From(usersTableName).
		Where(sq.Eq{"active": true}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.User](ctx, r.db, query, args...)
}

func (r *repository) GetUser(ctx context.Context, id string) (model.User, error) {
	query, args, err := qb.Select(userColumns...).From(usersTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.User{}, err
	}
	return collectOne[model.User](ctx, r.db, query, args...)
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query, args, err := qb.Select(userColumns...).From(usersTableName).Where(sq.Eq{"email": email}).ToSql()
	if err != nil {
		return model.User{}, err
	}
	return collectOne[model.User](ctx, r.db, query, args...)
}

func (r *repository) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	query, args, err := qb.Insert(usersTableName).
		Columns(userColumns...).
		Values(u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Role, u.Active, u.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	return collectOne[model.User](ctx, r.db, query, args...)
}

// UpdateUser never touches the password hash.
func (r *repository) UpdateUser(ctx context.Context, u model.User) (model.User, error) {
	query, args, err := qb.Update(usersTableName).
		SetMap(map[string]any{
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"email":      u.Email,
			"role":       u.Role,
			"active":     u.Active,
		}).
		Where(sq.Eq{"id": u.ID}).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	return collectOne[model.User](ctx, r.db, query, args...)
}

func (r *repository) DeleteUser(ctx context.Context, id string) error {
	return r.deleteByID(ctx, usersTableName, id)
}

func (r *repository) SetUserActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Exec(ctx, `update users set active = @active where id = @id`,
		pgx.NamedArgs{"id": id, "active": active})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) SetPassword(ctx context.Context, id string, hash string) error {
	tag, err := r.db.Exec(ctx, `update users set password_hash = @hash where id = @id`,
		pgx.NamedArgs{"id": id, "hash": hash})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) SetAvatar(ctx context.Context, id string, avatar []byte) error {
	tag, err := r.db.Exec(ctx, `update users set avatar = @avatar where id = @id`,
		pgx.NamedArgs{"id": id, "avatar": avatar})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) GetAvatar(ctx context.Context, id string) ([]byte, error) {
	var avatar []byte
	err := r.db.QueryRow(ctx, `select avatar from users where id = @id`, pgx.NamedArgs{"id": id}).Scan(&avatar)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNoAvatar
		}
		return nil, mapErr(err)
	}
	if len(avatar) == 0 {
		return nil, errs.ErrNoAvatar
	}
	return avatar, nil
}
