// Package customers resolves storefront customer accounts by ID.
package customers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loginascustomer/internal/shared"

	"github.com/jackc/pgx/v5"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Customer is the subset of a customer account the admin actions need.
type Customer struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	StoreID   int64
	CreatedAt time.Time
}

type Repository interface {
	GetByID(ctx context.Context, id int64) (Customer, error)
	IsAssistanceAllowed(ctx context.Context, customerID int64) (bool, error)
	SetAssistanceAllowed(ctx context.Context, customerID int64, allowed bool) error
}

type repository struct {
	queries *shared.Queries
}

func NewRepository(db shared.DBTX) Repository {
	return &repository{queries: shared.New(db)}
}

// GetByID returns ErrCustomerNotFound when no account has the given ID.
func (r *repository) GetByID(ctx context.Context, id int64) (Customer, error) {
	if id <= 0 {
		return Customer{}, ErrCustomerNotFound
	}

	row, err := r.queries.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, ErrCustomerNotFound
		}
		return Customer{}, fmt.Errorf("failed to get customer %d: %w", id, err)
	}

	return Customer{
		ID:        row.EntityID,
		Email:     row.Email,
		FirstName: row.Firstname,
		LastName:  row.Lastname,
		StoreID:   row.StoreID,
		CreatedAt: row.CreatedAt.Time,
	}, nil
}

// IsAssistanceAllowed reports whether the customer opted in to remote shopping assistance.
// Unknown customers have not.
func (r *repository) IsAssistanceAllowed(ctx context.Context, customerID int64) (bool, error) {
	if customerID <= 0 {
		return false, nil
	}

	allowed, err := r.queries.IsCustomerAssistanceAllowed(ctx, customerID)
	if err != nil {
		return false, fmt.Errorf("failed to read assistance flag for customer %d: %w", customerID, err)
	}
	return allowed, nil
}

func (r *repository) SetAssistanceAllowed(ctx context.Context, customerID int64, allowed bool) error {
	var err error
	if allowed {
		err = r.queries.AllowCustomerAssistance(ctx, customerID)
	} else {
		err = r.queries.DisallowCustomerAssistance(ctx, customerID)
	}
	if err != nil {
		return fmt.Errorf("failed to update assistance flag for customer %d: %w", customerID, err)
	}
	return nil
}
