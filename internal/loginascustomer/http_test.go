package loginascustomer

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loginascustomer/internal/adminauth"
	"loginascustomer/internal/customers"
	"loginascustomer/internal/eligibility"
	"loginascustomer/internal/sessionstorage"
	"loginascustomer/internal/urlbuilder"
)

func newTestServer(t *testing.T, f *fixture) (http.Handler, *sessionstorage.Store) {
	t.Helper()

	sessions, err := sessionstorage.NewStore(sessionstorage.Config{Secret: []byte("http-test-session-secret")}, nil)
	require.NoError(t, err)

	h, err := NewHandler(Config{}, Dependencies{
		Eligibility: f.eligibility,
		Customers:   f.customers,
		Stores:      f.stores,
		Admins:      f.admins,
		Tokens:      f.tokens,
		Tracker:     f.tracker,
		URLs:        urlbuilder.New(),
		Notifier:    sessions,
		Auditor:     f.auditor,
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(sessions.Middleware)
	NewHTTPHandler(h, sessions, nil).Register(r,
		adminauth.NewMiddleware(f.admins, nil).RequireResource(adminauth.ResourceLoginAsCustomer))
	return r, sessions
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, LoginPath, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var authorized = sessionstorage.AdminUser{ID: 7, Resources: []string{adminauth.ResourceLoginAsCustomer}}

func TestHTTP_Success(t *testing.T) {
	f := newFixture()
	f.expectSuccess(1)
	f.admins.ExpectedCalls = nil
	f.admins.On("CurrentAdmin", mock.Anything).Return(authorized, nil)
	server, _ := newTestServer(t, f)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, postForm(url.Values{"customer_id": {"42"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	body := decode(t, rec)
	assert.JSONEq(t, `[]`, string(body["messages"]))
	assert.JSONEq(t, `"https://shop.test/loginascustomer/login/index?secret=abc123&_nosid=1"`, string(body["redirectUrl"]))
	assert.NotEmpty(t, rec.Result().Cookies())
}

func TestHTTP_QueryParameters(t *testing.T) {
	f := newFixture()
	f.expectSuccess(1)
	f.admins.ExpectedCalls = nil
	f.admins.On("CurrentAdmin", mock.Anything).Return(authorized, nil)
	server, _ := newTestServer(t, f)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, LoginPath+"?entity_id=42", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, "null", string(decode(t, rec)["redirectUrl"]))
}

func TestHTTP_NotEligibleFlashesNotices(t *testing.T) {
	f := newFixture()
	f.admins.On("CurrentAdmin", mock.Anything).Return(authorized, nil)
	f.eligibility.On("Check", mock.Anything, int64(42)).Return(eligibility.Result{Messages: []string{"R1", "R2"}}, nil)
	server, sessions := newTestServer(t, f)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, postForm(url.Values{"customer_id": {"42"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.JSONEq(t, `["R1","R2"]`, string(body["messages"]))
	assert.Equal(t, "null", string(body["redirectUrl"]))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	sessions.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"R1", "R2"}, sessions.Errors(r.Context()))
	})).ServeHTTP(httptest.NewRecorder(), next)
}

func TestHTTP_CustomerNotFound(t *testing.T) {
	f := newFixture()
	f.admins.On("CurrentAdmin", mock.Anything).Return(authorized, nil)
	f.eligibility.On("Check", mock.Anything, int64(42)).Return(allowed(), nil)
	f.customers.On("GetByID", mock.Anything, int64(42)).Return(customers.Customer{}, customers.ErrCustomerNotFound)
	server, _ := newTestServer(t, f)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, postForm(url.Values{"customer_id": {"42"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"messages":["Customer with this ID no longer exists."],"redirectUrl":null}`, rec.Body.String())
}

func TestHTTP_FatalErrorIs500(t *testing.T) {
	f := newFixture()
	f.admins.On("CurrentAdmin", mock.Anything).Return(authorized, nil)
	f.eligibility.On("Check", mock.Anything, int64(42)).Return(eligibility.Result{}, errors.New("db down"))
	server, _ := newTestServer(t, f)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, postForm(url.Values{"customer_id": {"42"}}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestHTTP_MethodNotAllowed(t *testing.T) {
	f := newFixture()
	server, _ := newTestServer(t, f)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, LoginPath+"?customer_id=42", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	f.eligibility.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestHTTP_RequiresACLResource(t *testing.T) {
	f := newFixture()
	f.admins.On("CurrentAdmin", mock.Anything).Return(sessionstorage.AdminUser{ID: 7}, nil)
	server, _ := newTestServer(t, f)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, postForm(url.Values{"customer_id": {"42"}}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	f.eligibility.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}
