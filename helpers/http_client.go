// helpers/http_client.go
package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/beego/beego/v2/client/httplib"
)

const (
	contentTypeJSON = "application/json"
	userAgent       = "smarthire-client"
)

// RequestSpec describe una petición contra el API.
type RequestSpec struct {
	Method string
	URL    string
	// Body se serializa como JSON cuando no es nil.
	Body any
	// Raw se envía tal cual con RawContentType (cargas multipart); tiene prioridad sobre Body.
	Raw            []byte
	RawContentType string
	Filters        []httplib.FilterChain
	Transport      http.RoundTripper
	// Timeout 0 deja los valores por defecto de httplib.
	Timeout time.Duration
}

// Do ejecuta la petición una sola vez (sin reintentos) y deserializa la respuesta en out (si se provee).
// Los status fuera de 2xx se devuelven como *HTTPError.
func Do(ctx context.Context, spec RequestSpec, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req := httplib.NewBeegoRequestWithCtx(ctx, spec.URL, spec.Method)
	req.Retries(0)
	req.SetUserAgent(userAgent)
	if spec.Timeout > 0 {
		req.SetTimeout(spec.Timeout, spec.Timeout)
	}
	if spec.Transport != nil {
		req.SetTransport(spec.Transport)
	}
	req.Header("Accept", contentTypeJSON)

	switch {
	case spec.Raw != nil:
		req.Header("Content-Type", spec.RawContentType)
		req.Body(spec.Raw)
	default:
		req.Header("Content-Type", contentTypeJSON)
		if spec.Body != nil {
			payload, err := json.Marshal(spec.Body)
			if err != nil {
				return fmt.Errorf("serializando cuerpo para %s %s: %w", spec.Method, spec.URL, err)
			}
			req.Body(payload)
		}
	}

	if len(spec.Filters) > 0 {
		req.AddFilters(spec.Filters...)
	}

	resp, err := req.DoRequestWithCtx(ctx)
	if err != nil {
		return fmt.Errorf("%s %s: %w", spec.Method, spec.URL, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("leyendo respuesta de %s %s: %w", spec.Method, spec.URL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{
			Status: resp.StatusCode,
			Method: spec.Method,
			URL:    spec.URL,
			Body:   strings.TrimSpace(string(bodyBytes)),
		}
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("decodificando respuesta de %s %s: %w", spec.Method, spec.URL, err)
	}
	return nil
}
