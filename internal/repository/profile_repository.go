package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ProfileRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProfileRepository(db *pgxpool.Pool, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

func getRoleQuery(userID uuid.UUID) (string, []interface{}, error) {
	return psql.Select("role").
		From("profiles").
		Where(squirrel.Eq{"id": userID}).
		ToSql()
}

// GetRole returns the role stored on the user's profile.
func (r *ProfileRepository) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	sql, args, err := getRoleQuery(userID)
	if err != nil {
		return "", err
	}

	var role string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&role); err != nil {
		return "", fmt.Errorf("get role for %s: %w", userID, notFound(err))
	}
	return role, nil
}
