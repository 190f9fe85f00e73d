// Package stores resolves store views, the scope storefront URLs are built in.
package stores

import (
	"context"
	"errors"
	"fmt"

	"loginascustomer/internal/shared"

	"github.com/jackc/pgx/v5"
)

var ErrStoreNotFound = errors.New("store not found")

// Store is the context a storefront URL is generated for.
type Store struct {
	ID       int64
	Code     string
	Name     string
	BaseURL  string
	IsActive bool
}

type Resolver interface {
	GetStore(ctx context.Context, id int64) (Store, error)
}

type repository struct {
	queries *shared.Queries
}

func NewRepository(db shared.DBTX) Resolver {
	return &repository{queries: shared.New(db)}
}

func (r *repository) GetStore(ctx context.Context, id int64) (Store, error) {
	row, err := r.queries.GetStore(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Store{}, fmt.Errorf("store %d: %w", id, ErrStoreNotFound)
		}
		return Store{}, fmt.Errorf("failed to get store %d: %w", id, err)
	}

	return Store{
		ID:       row.StoreID,
		Code:     row.Code,
		Name:     row.Name,
		BaseURL:  row.BaseUrl,
		IsActive: row.IsActive,
	}, nil
}
