package clients_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/smarthire/smarthire_client/helpers"
	"github.com/smarthire/smarthire_client/internal/clients"
	"github.com/smarthire/smarthire_client/internal/storage"
	"github.com/smarthire/smarthire_client/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, testutil.LeakOptions()...)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk unavailable")
}

func (failingStore) Set(context.Context, string, string) error { return errors.New("disk unavailable") }

func (failingStore) Delete(context.Context, string) error { return errors.New("disk unavailable") }

func TestDo_AttachesBearerTokenWhenPresent(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.Handle(http.MethodGet, "/ping", http.StatusOK, `{"ok":true}`)

	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), storage.KeyToken, "secret-token"))
	api := fake.NewClient(t, store)

	var out struct {
		Ok bool `json:"ok"`
	}
	require.NoError(t, api.Do(context.Background(), http.MethodGet, "/ping", nil, nil, &out))
	assert.True(t, out.Ok)

	got := fake.Only(t)
	assert.Equal(t, "Bearer secret-token", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "/api/ping", got.Path)
}

func TestDo_OmitsAuthorizationWithoutToken(t *testing.T) {
	cases := map[string]storage.Store{
		"no token":      storage.NewMemoryStore(),
		"failing store": failingStore{},
	}
	for name, store := range cases {
		t.Run(name, func(t *testing.T) {
			fake := testutil.NewFakeAPI(t)
			fake.Handle(http.MethodGet, "/ping", http.StatusOK, `{}`)
			api := fake.NewClient(t, store)

			require.NoError(t, api.Do(context.Background(), http.MethodGet, "/ping", nil, nil, nil))
			got := fake.Only(t)
			_, present := got.Header["Authorization"]
			assert.False(t, present, "Authorization header must be absent")
		})
	}
}

func TestDo_ReadsTokenOnEveryRequest(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.Handle(http.MethodGet, "/ping", http.StatusOK, `{}`)
	store := storage.NewMemoryStore()
	api := fake.NewClient(t, store)
	ctx := context.Background()

	require.NoError(t, api.Do(ctx, http.MethodGet, "/ping", nil, nil, nil))
	require.NoError(t, store.Set(ctx, storage.KeyToken, "later"))
	require.NoError(t, api.Do(ctx, http.MethodGet, "/ping", nil, nil, nil))

	reqs := fake.Requests()
	require.Len(t, reqs, 2)
	assert.Empty(t, reqs[0].Header.Get("Authorization"))
	assert.Equal(t, "Bearer later", reqs[1].Header.Get("Authorization"))
}

func TestDo_CorrelationID(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.Handle(http.MethodGet, "/ping", http.StatusOK, `{}`)
	cfg := fake.Config()
	cfg.CorrelationIDs = true
	api := clients.NewAPIClient(cfg, storage.NewMemoryStore())
	defer api.Close()

	ctx := context.Background()
	require.NoError(t, api.Do(ctx, http.MethodGet, "/ping", nil, nil, nil))
	require.NoError(t, api.Do(ctx, http.MethodGet, "/ping", nil, nil, nil))

	reqs := fake.Requests()
	require.Len(t, reqs, 2)
	first, second := reqs[0].Header.Get("X-Request-Id"), reqs[1].Header.Get("X-Request-Id")
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestDo_SendsBodyAndQuery(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.Handle(http.MethodPost, "/things", http.StatusCreated, `{"id":1}`)
	api := fake.NewClient(t, nil)

	query := url.Values{}
	query.Set("a", "1")
	var out map[string]any
	require.NoError(t, api.Do(context.Background(), http.MethodPost, "/things", query, map[string]string{"name": "x"}, &out))

	got := fake.Only(t)
	assert.Equal(t, "1", got.Query.Get("a"))
	assert.Equal(t, map[string]any{"name": "x"}, got.JSON(t))
	assert.EqualValues(t, 1, out["id"])
}

func TestDo_NonSuccessStatusIsHTTPError(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.Handle(http.MethodGet, "/forbidden", http.StatusForbidden, `{"statusCode":403,"message":"Solo candidatos"}`)
	fake.Handle(http.MethodPost, "/invalid", http.StatusBadRequest, `{"statusCode":400,"message":["titulo requerido","nivel invalido"]}`)
	api := fake.NewClient(t, nil)
	ctx := context.Background()

	err := api.Do(ctx, http.MethodGet, "/forbidden", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, helpers.IsHTTPError(err, http.StatusForbidden))
	assert.Equal(t, http.StatusForbidden, helpers.StatusOf(err))
	var he *helpers.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "Solo candidatos", he.Message())

	err = api.Do(ctx, http.MethodPost, "/invalid", nil, map[string]string{}, nil)
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "titulo requerido; nivel invalido", he.Message())
}

func TestDo_UnmatchedRouteIs404(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	api := fake.NewClient(t, nil)

	err := api.Do(context.Background(), http.MethodGet, "/missing", nil, nil, nil)
	assert.True(t, helpers.IsHTTPError(err, http.StatusNotFound))
}

func TestDo_TransportFailureIsNotHTTPError(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	api := fake.NewClient(t, nil)
	fake.Server.Close()

	err := api.Do(context.Background(), http.MethodGet, "/ping", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, 0, helpers.StatusOf(err))
}

func TestDo_MalformedJSONFails(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.Handle(http.MethodGet, "/broken", http.StatusOK, `{ this is : not json `)
	api := fake.NewClient(t, nil)

	var out map[string]any
	err := api.Do(context.Background(), http.MethodGet, "/broken", nil, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decodificando")
}

func TestDo_EmptyBodyIsVoidSuccess(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.Handle(http.MethodDelete, "/things/1", http.StatusNoContent, ``)
	api := fake.NewClient(t, nil)

	var out map[string]any
	require.NoError(t, api.Do(context.Background(), http.MethodDelete, "/things/1", nil, nil, &out))
	assert.Nil(t, out)
}

func TestDo_CancelledContext(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	api := fake.NewClient(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := api.Do(ctx, http.MethodGet, "/ping", nil, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fake.Requests(), "no request may leave after cancellation")
}

func TestUpload_SendsMultipartWithToken(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.HandleFunc(http.MethodPost, "/upload", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"name":"`+header.Filename+`","content":"`+string(content)+`"}`)
	})

	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), storage.KeyToken, "tok"))
	api := fake.NewClient(t, store)

	var out map[string]string
	err := api.Upload(context.Background(), "/upload", "file", "foto.png", strings.NewReader("PNGDATA"), &out)
	require.NoError(t, err)
	assert.Equal(t, "foto.png", out["name"])
	assert.Equal(t, "PNGDATA", out["content"])

	got := fake.Only(t)
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.True(t, strings.HasPrefix(got.Header.Get("Content-Type"), "multipart/form-data"))
}
