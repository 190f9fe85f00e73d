// Package urlbuilder builds storefront URLs scoped to a store view.
package urlbuilder

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"loginascustomer/internal/stores"
)

var ErrInvalidBaseURL = errors.New("store base URL must be absolute")

// Param is a single query parameter. Parameters keep the order they are given in.
type Param struct {
	Key   string
	Value string
}

type Builder struct{}

func New() *Builder {
	return &Builder{}
}

// URL joins route onto the store's base URL and appends params in order.
func (b *Builder) URL(store stores.Store, route string, params ...Param) (string, error) {
	base, err := url.Parse(store.BaseURL)
	if err != nil {
		return "", fmt.Errorf("store %d base URL: %w", store.ID, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("store %d base URL %q: %w", store.ID, store.BaseURL, ErrInvalidBaseURL)
	}

	base.Path = strings.TrimSuffix(base.Path, "/") + "/" + strings.TrimPrefix(route, "/")
	base.RawPath = ""
	base.RawQuery = encode(params)
	base.Fragment = ""

	return base.String(), nil
}

// encode is url.Values.Encode without the key sort.
func encode(params []Param) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}
