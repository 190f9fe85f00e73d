package tokenstore

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// StoredToken is a persisted row; the secret itself is never stored.
type StoredToken struct {
	AuthenticationData
	SecretHash string
}

type Repository interface {
	Create(ctx context.Context, token StoredToken) error
	GetBySecretHash(ctx context.Context, secretHash string) (*StoredToken, error)
	DeleteForAdmin(ctx context.Context, adminID int64) (int64, error)
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	CountForAdmin(ctx context.Context, adminID int64) (int64, error)
}

type repository struct {
	queries *Queries
}

func NewRepository(db DBTX) Repository {
	return &repository{
		queries: New(db),
	}
}

func (r *repository) Create(ctx context.Context, token StoredToken) error {
	return r.queries.CreateAuthenticationData(ctx, CreateAuthenticationDataParams{
		ID:         token.ID,
		CustomerID: token.CustomerID,
		AdminID:    token.AdminID,
		SecretHash: token.SecretHash,
		CreatedAt:  pgtype.Timestamptz{Time: token.CreatedAt, Valid: true},
	})
}

func (r *repository) GetBySecretHash(ctx context.Context, secretHash string) (*StoredToken, error) {
	row, err := r.queries.GetAuthenticationDataBySecretHash(ctx, secretHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}

	return &StoredToken{
		AuthenticationData: AuthenticationData{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			AdminID:    row.AdminID,
			CreatedAt:  row.CreatedAt.Time,
		},
		SecretHash: row.SecretHash,
	}, nil
}

func (r *repository) DeleteForAdmin(ctx context.Context, adminID int64) (int64, error) {
	return r.queries.DeleteAuthenticationDataForAdmin(ctx, adminID)
}

func (r *repository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.queries.DeleteAuthenticationDataCreatedBefore(ctx, pgtype.Timestamptz{Time: cutoff, Valid: true})
}

func (r *repository) CountForAdmin(ctx context.Context, adminID int64) (int64, error) {
	return r.queries.CountAuthenticationDataForAdmin(ctx, adminID)
}
