package postgresql

import (
	"context"

	"github.com/161corp/hr-backend-go/internal/domain/user"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.Role, &usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, apperr.Translate(err)
	}
	return usr, nil
}

// GetByEmail implements user.UserRepository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.Role, &usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, apperr.Translate(err)
	}
	return usr, nil
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, usr user.User) (int64, error) {
	var id int64
	err := WithTransaction(ctx, u.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`INSERT INTO users (email, password_hash, role, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			RETURNING id`,
			usr.Email, usr.PasswordHash, string(usr.Role),
		).Scan(&id)
	})
	if err != nil {
		if apperr.IsUniqueViolation(err) {
			return 0, user.ErrEmailExists
		}
		return 0, apperr.Translate(err)
	}
	return id, nil
}
