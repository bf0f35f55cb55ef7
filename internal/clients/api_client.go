package clients

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sync"

	"github.com/beego/beego/v2/client/httplib"
	"github.com/beego/beego/v2/core/logs"

	"github.com/smarthire/smarthire_client/helpers"
	"github.com/smarthire/smarthire_client/internal/storage"
	rootservices "github.com/smarthire/smarthire_client/services"
)

// APIClient es el único punto de salida hacia el API de SmartHire.
// Toda petición pasa por los filtros de autenticación; no hay forma de omitirlos por llamada.
type APIClient struct {
	cfg       rootservices.Config
	store     storage.Store
	transport *http.Transport
	filters   []httplib.FilterChain
}

var (
	apiClient     *APIClient
	apiClientOnce sync.Once
)

// API returns the process-wide client built from GetConfig and the sqlite store at cfg.StorePath.
// If the store cannot be opened the client falls back to an in-memory store.
func API() *APIClient {
	apiClientOnce.Do(func() {
		cfg := rootservices.GetConfig()
		var store storage.Store
		sqliteStore, err := storage.OpenSQLite(context.Background(), cfg.StorePath)
		if err != nil {
			logs.Error("store local no disponible, usando memoria:", err)
			store = storage.NewMemoryStore()
		} else {
			store = sqliteStore
		}
		apiClient = NewAPIClient(cfg, store)
	})
	return apiClient
}

// NewAPIClient construye un cliente con la base del cfg y el store de donde se lee el token.
func NewAPIClient(cfg rootservices.Config, store storage.Store) *APIClient {
	if store == nil {
		store = storage.NewMemoryStore()
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	// httplib completa TLSClientConfig/Proxy/DialContext si están vacíos; se fijan aquí
	// para que el transporte compartido no se modifique en cada petición.
	transport.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}

	filters := []httplib.FilterChain{BearerTokenFilter(store)}
	if cfg.CorrelationIDs {
		filters = append(filters, RequestIDFilter())
	}

	logs.Info("smarthire: cliente API creado base_url=%s", cfg.BaseURL)
	return &APIClient{
		cfg:       cfg,
		store:     store,
		transport: transport,
		filters:   filters,
	}
}

// Store devuelve el almacenamiento local del que el cliente lee el token.
func (c *APIClient) Store() storage.Store {
	return c.store
}

// BaseURL devuelve el origen configurado.
func (c *APIClient) BaseURL() string {
	return c.cfg.BaseURL
}

// Do ejecuta una petición JSON contra path (relativo a la base) y deserializa la respuesta en out.
// query se agrega sólo si tiene valores.
func (c *APIClient) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	endpoint := rootservices.BuildURL(c.cfg.BaseURL, path)
	if encoded := query.Encode(); encoded != "" {
		endpoint = endpoint + "?" + encoded
	}
	return helpers.Do(ctx, helpers.RequestSpec{
		Method:    method,
		URL:       endpoint,
		Body:      in,
		Filters:   c.filters,
		Transport: c.transport,
		Timeout:   c.cfg.RequestTimeout,
	}, out)
}

// Upload envía un archivo como multipart/form-data en el campo field.
func (c *APIClient) Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("leyendo archivo %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	return helpers.Do(ctx, helpers.RequestSpec{
		Method:         http.MethodPost,
		URL:            rootservices.BuildURL(c.cfg.BaseURL, path),
		Raw:            buf.Bytes(),
		RawContentType: mw.FormDataContentType(),
		Filters:        c.filters,
		Transport:      c.transport,
		Timeout:        c.cfg.RequestTimeout,
	}, out)
}

// Close libera las conexiones inactivas del transporte.
func (c *APIClient) Close() {
	c.transport.CloseIdleConnections()
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
