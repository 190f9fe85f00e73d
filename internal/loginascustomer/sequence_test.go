package loginascustomer

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loginascustomer/internal/customers"
	"loginascustomer/internal/sessionstorage"
	"loginascustomer/internal/stores"
	"loginascustomer/internal/tokenstore"
	"loginascustomer/internal/urlbuilder"
)

// memoryTokens is an in-memory tokenstore.Repository.
type memoryTokens struct {
	mu     sync.Mutex
	tokens map[string]tokenstore.StoredToken
}

func newMemoryTokens() *memoryTokens {
	return &memoryTokens{tokens: make(map[string]tokenstore.StoredToken)}
}

func (m *memoryTokens) Create(ctx context.Context, token tokenstore.StoredToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token.SecretHash] = token
	return nil
}

func (m *memoryTokens) GetBySecretHash(ctx context.Context, secretHash string) (*tokenstore.StoredToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	token, ok := m.tokens[secretHash]
	if !ok {
		return nil, tokenstore.ErrTokenNotFound
	}
	return &token, nil
}

func (m *memoryTokens) DeleteForAdmin(ctx context.Context, adminID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for hash, token := range m.tokens {
		if token.AdminID == adminID {
			delete(m.tokens, hash)
			n++
		}
	}
	return n, nil
}

func (m *memoryTokens) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for hash, token := range m.tokens {
		if token.CreatedAt.Before(cutoff) {
			delete(m.tokens, hash)
			n++
		}
	}
	return n, nil
}

func (m *memoryTokens) CountForAdmin(ctx context.Context, adminID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, token := range m.tokens {
		if token.AdminID == adminID {
			n++
		}
	}
	return n, nil
}

func TestHandle_SequentialRequestsKeepOneTokenPerAdmin(t *testing.T) {
	repo := newMemoryTokens()
	tokens, err := tokenstore.NewService(repo, tokenstore.Config{SecretKey: []byte("sequence-test-secret-key")})
	require.NoError(t, err)

	f := newFixture()
	f.eligibility.On("Check", mock.Anything, mock.Anything).Return(allowed(), nil)
	f.customers.On("GetByID", mock.Anything, int64(42)).Return(customers.Customer{ID: 42, StoreID: 1}, nil)
	f.customers.On("GetByID", mock.Anything, int64(43)).Return(customers.Customer{ID: 43, StoreID: 1}, nil)
	f.admins.On("CurrentAdmin", mock.Anything).Return(sessionstorage.AdminUser{ID: 7}, nil)
	f.tracker.On("SetCustomerID", mock.Anything, mock.Anything).Return(nil)
	f.stores.On("GetStore", mock.Anything, int64(1)).Return(stores.Store{ID: 1, BaseURL: "https://shop.test/"}, nil)

	h, err := NewHandler(Config{}, Dependencies{
		Eligibility: f.eligibility,
		Customers:   f.customers,
		Stores:      f.stores,
		Admins:      f.admins,
		Tokens:      tokens,
		Tracker:     f.tracker,
		URLs:        urlbuilder.New(),
		Notifier:    f.notifier,
	})
	require.NoError(t, err)

	var lastSecret string
	for _, id := range []string{"42", "43", "42"} {
		envelope, err := h.Handle(context.Background(), params{"customer_id": id})
		require.NoError(t, err)
		require.NotNil(t, envelope.RedirectURL)

		u, err := url.Parse(*envelope.RedirectURL)
		require.NoError(t, err)
		lastSecret = u.Query().Get("secret")
		assert.Len(t, lastSecret, tokenstore.DefaultConfig().SecretLength)

		count, err := repo.CountForAdmin(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	}

	data, err := tokens.GetBySecret(context.Background(), lastSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), data.CustomerID)
	assert.Equal(t, int64(7), data.AdminID)
}
