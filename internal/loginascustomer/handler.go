// Package loginascustomer implements the admin action that starts an
// impersonation: it checks eligibility, issues a one-time secret for the
// (customer, admin) pair and answers with the storefront URL that redeems it.
package loginascustomer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"loginascustomer/internal/analytics"
	"loginascustomer/internal/customers"
	"loginascustomer/internal/eligibility"
	"loginascustomer/internal/sessionstorage"
	"loginascustomer/internal/stores"
	"loginascustomer/internal/tokenstore"
	"loginascustomer/internal/urlbuilder"
)

const (
	// RedeemRoute is the storefront route that consumes the secret.
	RedeemRoute = "loginascustomer/login/index"

	MessageCustomerNotFound = "Customer with this ID no longer exists."
	MessageSelectStore      = "Please select a Store View to login in."
	MessageNotAllowed       = "Login as Customer is not allowed for this customer."
)

// Params exposes the request parameters by name. Missing parameters read as "".
type Params interface {
	Param(name string) string
}

// Envelope is the JSON body returned to the admin panel. Exactly one of
// Messages and RedirectURL is populated.
type Envelope struct {
	RedirectURL *string  `json:"redirectUrl"`
	Messages    []string `json:"messages"`
}

type EligibilityChecker interface {
	Check(ctx context.Context, customerID int64) (eligibility.Result, error)
}

type CustomerDirectory interface {
	GetByID(ctx context.Context, id int64) (customers.Customer, error)
}

type StoreResolver interface {
	GetStore(ctx context.Context, id int64) (stores.Store, error)
}

type AdminSessionContext interface {
	CurrentAdmin(ctx context.Context) (sessionstorage.AdminUser, error)
}

type TokenStore interface {
	DeleteForAdmin(ctx context.Context, adminID int64) error
	Save(ctx context.Context, data tokenstore.AuthenticationData) (string, error)
}

type StateTracker interface {
	SetCustomerID(ctx context.Context, customerID int64) error
}

type URLBuilder interface {
	URL(store stores.Store, route string, params ...urlbuilder.Param) (string, error)
}

// Notifier surfaces notices in the admin panel.
type Notifier interface {
	AddError(ctx context.Context, message string)
}

// Auditor records issued impersonations. Failures never fail the request.
type Auditor interface {
	LoginAsCustomer(ctx context.Context, event analytics.LoginAsCustomerEvent) error
}

type Config struct {
	// StoreManualChoice requires store_id instead of using the customer's home store.
	StoreManualChoice bool
}

// Dependencies lists the handler's collaborators. All are required except Auditor.
type Dependencies struct {
	Eligibility EligibilityChecker
	Customers   CustomerDirectory
	Stores      StoreResolver
	Admins      AdminSessionContext
	Tokens      TokenStore
	Tracker     StateTracker
	URLs        URLBuilder
	Notifier    Notifier
	Auditor     Auditor
}

func (d Dependencies) validate() error {
	var missing []string
	if d.Eligibility == nil {
		missing = append(missing, "Eligibility")
	}
	if d.Customers == nil {
		missing = append(missing, "Customers")
	}
	if d.Stores == nil {
		missing = append(missing, "Stores")
	}
	if d.Admins == nil {
		missing = append(missing, "Admins")
	}
	if d.Tokens == nil {
		missing = append(missing, "Tokens")
	}
	if d.Tracker == nil {
		missing = append(missing, "Tracker")
	}
	if d.URLs == nil {
		missing = append(missing, "URLs")
	}
	if d.Notifier == nil {
		missing = append(missing, "Notifier")
	}
	if len(missing) > 0 {
		return fmt.Errorf("loginascustomer: missing dependencies: %s", strings.Join(missing, ", "))
	}
	return nil
}

type Handler struct {
	config Config
	deps   Dependencies
	now    func() time.Time
}

func NewHandler(config Config, deps Dependencies) (*Handler, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	return &Handler{config: config, deps: deps, now: time.Now}, nil
}

// Handle runs the impersonation request. Conditions the admin can correct come
// back as messages; any other collaborator failure is returned as an error and
// nothing is retried or rolled back.
func (h *Handler) Handle(ctx context.Context, params Params) (Envelope, error) {
	customerID := parseID(params.Param("customer_id"))
	if customerID == 0 {
		customerID = parseID(params.Param("entity_id"))
	}

	result, err := h.deps.Eligibility.Check(ctx, customerID)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to check eligibility for customer %d: %w", customerID, err)
	}
	if !result.Enabled {
		messages := result.Messages
		if len(messages) == 0 {
			messages = []string{MessageNotAllowed}
		}
		for _, msg := range messages {
			h.deps.Notifier.AddError(ctx, msg)
		}
		return rejected(messages...), nil
	}

	customer, err := h.deps.Customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customers.ErrCustomerNotFound) {
			return rejected(MessageCustomerNotFound), nil
		}
		return Envelope{}, fmt.Errorf("failed to load customer %d: %w", customerID, err)
	}

	storeID := customer.StoreID
	if h.config.StoreManualChoice {
		storeID = parseID(params.Param("store_id"))
		if storeID <= 0 {
			return rejected(MessageSelectStore), nil
		}
	}

	admin, err := h.deps.Admins.CurrentAdmin(ctx)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to resolve admin: %w", err)
	}

	if err := h.deps.Tokens.DeleteForAdmin(ctx, admin.ID); err != nil {
		return Envelope{}, err
	}
	secret, err := h.deps.Tokens.Save(ctx, tokenstore.AuthenticationData{
		CustomerID: customerID,
		AdminID:    admin.ID,
	})
	if err != nil {
		return Envelope{}, err
	}

	if err := h.deps.Tracker.SetCustomerID(ctx, customerID); err != nil {
		return Envelope{}, fmt.Errorf("failed to record impersonation: %w", err)
	}

	store, err := h.deps.Stores.GetStore(ctx, storeID)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to resolve store %d: %w", storeID, err)
	}

	redirectURL, err := h.deps.URLs.URL(store, RedeemRoute,
		urlbuilder.Param{Key: "secret", Value: secret},
		urlbuilder.Param{Key: "_nosid", Value: "1"},
	)
	if err != nil {
		return Envelope{}, err
	}

	if h.deps.Auditor != nil {
		_ = h.deps.Auditor.LoginAsCustomer(ctx, analytics.LoginAsCustomerEvent{
			AdminID:    admin.ID,
			CustomerID: customer.ID,
			StoreID:    store.ID,
			IssuedAt:   h.now(),
		})
	}

	return Envelope{Messages: []string{}, RedirectURL: &redirectURL}, nil
}

func rejected(messages ...string) Envelope {
	return Envelope{Messages: messages}
}

// parseID reads a request ID the way an integer cast does: leading whitespace,
// an optional sign, then the leading digit run. Input without digits is 0.
func parseID(raw string) int64 {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
