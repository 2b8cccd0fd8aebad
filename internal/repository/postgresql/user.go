package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/database"
)

type userRepository struct {
	db database.Querier
}

func NewUserRepository(db database.Querier) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	u.id, u.email, u.full_name, u.password_hash, u.role,
	u.oauth_provider, u.oauth_provider_id, u.created_at, u.updated_at, e.id
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role,
		&u.OAuthProvider, &u.OAuthProviderID, &u.CreatedAt, &u.UpdatedAt, &u.EmployeeID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE u.email = $1
	`

	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if err == user.ErrUserNotFound {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE u.id = $1
	`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == user.ErrUserNotFound {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	query := `
		INSERT INTO users (id, email, full_name, password_hash, role, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, email, full_name, password_hash, role, oauth_provider, oauth_provider_id, created_at, updated_at
	`

	var u user.User
	err := r.db.QueryRow(ctx, query,
		uuid.NewString(), newUser.Email, newUser.FullName, newUser.PasswordHash,
		newUser.Role, newUser.OAuthProvider, newUser.OAuthProviderID,
	).Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role,
		&u.OAuthProvider, &u.OAuthProviderID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (r *userRepository) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	query := `
		UPDATE users
		SET oauth_provider = 'google', oauth_provider_id = $1, updated_at = NOW()
		WHERE email = $2
		RETURNING id, email, full_name, password_hash, role, oauth_provider, oauth_provider_id, created_at, updated_at
	`

	var u user.User
	err := r.db.QueryRow(ctx, query, googleID, email).Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role,
		&u.OAuthProvider, &u.OAuthProviderID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to link google account: %w", err)
	}

	return u, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
