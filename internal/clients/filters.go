package clients

import (
	"context"
	"net/http"
	"strings"

	"github.com/beego/beego/v2/client/httplib"
	"github.com/beego/beego/v2/core/logs"
	"github.com/google/uuid"

	"github.com/smarthire/smarthire_client/internal/storage"
)

// BearerTokenFilter agrega el header Authorization si el store tiene un token.
// Sin token (o si el store falla) la petición sale sin modificar.
func BearerTokenFilter(store storage.Store) httplib.FilterChain {
	return func(next httplib.Filter) httplib.Filter {
		return func(ctx context.Context, req *httplib.BeegoHTTPRequest) (*http.Response, error) {
			if token := readToken(ctx, store); token != "" {
				req.Header("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

// RequestIDFilter marca cada petición con un X-Request-Id nuevo.
func RequestIDFilter() httplib.FilterChain {
	return func(next httplib.Filter) httplib.Filter {
		return func(ctx context.Context, req *httplib.BeegoHTTPRequest) (*http.Response, error) {
			req.Header("X-Request-Id", uuid.NewString())
			return next(ctx, req)
		}
	}
}

func readToken(ctx context.Context, store storage.Store) string {
	if store == nil {
		return ""
	}
	token, ok, err := store.Get(ctx, storage.KeyToken)
	if err != nil {
		logs.Warn("no se pudo leer el token local:", err)
		return ""
	}
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
