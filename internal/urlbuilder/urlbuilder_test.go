package urlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loginascustomer/internal/stores"
)

func TestBuilder_URL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		route   string
		params  []Param
		want    string
	}{
		{
			name:    "keeps parameter order",
			baseURL: "https://shop.test/",
			route:   "loginascustomer/login/index",
			params:  []Param{{"secret", "abc123"}, {"_nosid", "1"}},
			want:    "https://shop.test/loginascustomer/login/index?secret=abc123&_nosid=1",
		},
		{
			name:    "base without trailing slash",
			baseURL: "https://shop.test",
			route:   "/loginascustomer/login/index",
			want:    "https://shop.test/loginascustomer/login/index",
		},
		{
			name:    "store view path prefix",
			baseURL: "https://shop.test/de/",
			route:   "loginascustomer/login/index",
			params:  []Param{{"secret", "a b&c"}},
			want:    "https://shop.test/de/loginascustomer/login/index?secret=a+b%26c",
		},
		{
			name:    "drops base query",
			baseURL: "http://localhost:8080/?___store=default",
			route:   "customer/account",
			params:  []Param{{"_nosid", "1"}},
			want:    "http://localhost:8080/customer/account?_nosid=1",
		},
	}

	b := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.URL(stores.Store{ID: 1, BaseURL: tt.baseURL}, tt.route, tt.params...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuilder_URL_InvalidBase(t *testing.T) {
	b := New()

	_, err := b.URL(stores.Store{ID: 2, BaseURL: "shop.test"}, "x")
	assert.ErrorIs(t, err, ErrInvalidBaseURL)

	_, err = b.URL(stores.Store{ID: 3, BaseURL: "http://[::1"}, "x")
	assert.Error(t, err)
}
