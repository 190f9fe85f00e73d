// Package sessionstorage keeps the admin panel session in a signed cookie.
//
// Middleware loads the session once per request and stores it in the request
// context, so request-scoped collaborators (the current admin, flash notices, the
// impersonation tracker) read and write it without touching the ResponseWriter.
// Handlers call Commit before writing the response body.
package sessionstorage

import (
	"context"
	"encoding/gob"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	// DefaultCookieName is the admin session cookie.
	DefaultCookieName = "__admin_session"

	adminKey  = "admin"
	errorsKey = "_flash_error"
)

var (
	ErrInvalidSecret = errors.New("session secret must be at least 16 bytes")
	ErrNoSession     = errors.New("no session in request context")
	ErrNoAdmin       = errors.New("no admin user in session")
)

// AdminUser is the authenticated back-office user stored in the session.
type AdminUser struct {
	ID        int64
	Username  string
	Resources []string
}

// IsAllowed reports whether the admin holds the ACL resource.
func (a AdminUser) IsAllowed(resource string) bool {
	for _, r := range a.Resources {
		if r == resource {
			return true
		}
	}
	return false
}

func init() {
	gob.Register(AdminUser{})
}

type Config struct {
	Secret     []byte
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

type Store struct {
	cookies *sessions.CookieStore
	name    string
	logger  *slog.Logger
}

type contextKey struct{}

func NewStore(config Config, logger *slog.Logger) (*Store, error) {
	if len(config.Secret) < 16 {
		return nil, ErrInvalidSecret
	}
	if config.CookieName == "" {
		config.CookieName = DefaultCookieName
	}
	if config.MaxAge <= 0 {
		config.MaxAge = 24 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}

	cookies := sessions.NewCookieStore(config.Secret)
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(config.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   config.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Store{
		cookies: cookies,
		name:    config.CookieName,
		logger:  logger,
	}, nil
}

// Middleware attaches the admin session to the request context. A cookie that
// fails to decode is replaced by a fresh, empty session.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := s.cookies.Get(r, s.name)
		if err != nil {
			s.logger.Warn("Discarding unreadable admin session", "error", err)
		}
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), session)))
	})
}

// NewContext returns a copy of ctx carrying session.
func NewContext(ctx context.Context, session *sessions.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, session)
}

// FromContext returns the session attached by Middleware.
func FromContext(ctx context.Context) (*sessions.Session, bool) {
	session, ok := ctx.Value(contextKey{}).(*sessions.Session)
	return session, ok && session != nil
}

// Commit writes the request's session cookie.
func (s *Store) Commit(w http.ResponseWriter, r *http.Request) error {
	session, ok := FromContext(r.Context())
	if !ok {
		return ErrNoSession
	}
	return session.Save(r, w)
}

// Destroy expires the session cookie.
func (s *Store) Destroy(w http.ResponseWriter, r *http.Request) error {
	session, ok := FromContext(r.Context())
	if !ok {
		return ErrNoSession
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// CurrentAdmin returns the admin the session belongs to.
func (s *Store) CurrentAdmin(ctx context.Context) (AdminUser, error) {
	session, ok := FromContext(ctx)
	if !ok {
		return AdminUser{}, ErrNoSession
	}

	admin, ok := session.Values[adminKey].(AdminUser)
	if !ok || admin.ID <= 0 {
		return AdminUser{}, ErrNoAdmin
	}
	return admin, nil
}

// SetAdmin binds the session to admin. The admin login flow calls this.
func (s *Store) SetAdmin(ctx context.Context, admin AdminUser) error {
	session, ok := FromContext(ctx)
	if !ok {
		return ErrNoSession
	}
	session.Values[adminKey] = admin
	return nil
}

// AddError queues an error notice for the admin panel. It is a no-op without a session.
func (s *Store) AddError(ctx context.Context, message string) {
	session, ok := FromContext(ctx)
	if !ok {
		s.logger.Debug("Dropping admin notice without session", "message", message)
		return
	}
	session.AddFlash(message, errorsKey)
}

// Errors drains the queued error notices.
func (s *Store) Errors(ctx context.Context) []string {
	session, ok := FromContext(ctx)
	if !ok {
		return nil
	}

	var messages []string
	for _, f := range session.Flashes(errorsKey) {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
