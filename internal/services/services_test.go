package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/smarthire/smarthire_client/internal/services"
	"github.com/smarthire/smarthire_client/internal/storage"
	"github.com/smarthire/smarthire_client/internal/testutil"
	"github.com/smarthire/smarthire_client/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, testutil.LeakOptions()...)
}

type harness struct {
	fake  *testutil.FakeAPI
	store *storage.MemoryStore
	svc   *services.Services
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fake := testutil.NewFakeAPI(t)
	store := storage.NewMemoryStore()
	return &harness{
		fake:  fake,
		store: store,
		svc:   services.New(fake.NewClient(t, store), store),
	}
}

func (h *harness) login(t *testing.T, token string) {
	t.Helper()
	if err := h.store.Set(context.Background(), storage.KeyToken, token); err != nil {
		t.Fatal(err)
	}
}

func (h *harness) handle(method, path string, status int, body string) {
	h.fake.Handle(method, path, status, body)
}

const (
	get   = http.MethodGet
	post  = http.MethodPost
	put   = http.MethodPut
	patch = http.MethodPatch
	del   = http.MethodDelete
)

// Cada servicio debe llevar el Bearer cuando hay token y omitir el header cuando no.
func TestAuthorizationHeaderAcrossServices(t *testing.T) {
	calls := []struct {
		name   string
		method string
		path   string
		body   string
		call   func(ctx context.Context, svc *services.Services) error
	}{
		{"candidato", get, "/candidatos/profile", `{"id":1}`, func(ctx context.Context, svc *services.Services) error {
			_, err := svc.Candidato.GetProfile(ctx)
			return err
		}},
		{"educacion", get, "/educacion", `[]`, func(ctx context.Context, svc *services.Services) error {
			_, err := svc.Educacion.List(ctx)
			return err
		}},
		{"experiencia", get, "/experiencia", `[]`, func(ctx context.Context, svc *services.Services) error {
			_, err := svc.Experiencia.List(ctx)
			return err
		}},
		{"idiomas", get, "/idiomas", `[]`, func(ctx context.Context, svc *services.Services) error {
			_, err := svc.Idiomas.List(ctx)
			return err
		}},
		{"habilidades", get, "/habilidades", `[]`, func(ctx context.Context, svc *services.Services) error {
			_, err := svc.Habilidades.List(ctx)
			return err
		}},
		{"postulaciones", get, "/postulaciones/mis-postulaciones", `{"data":[],"pagination":{}}`, func(ctx context.Context, svc *services.Services) error {
			_, err := svc.Postulaciones.ListMine(ctx, 0, 0)
			return err
		}},
		{"vacantes", get, "/vacantes", `[]`, func(ctx context.Context, svc *services.Services) error {
			_, err := svc.Vacantes.List(ctx, nil)
			return err
		}},
		{"chat", post, "/chatbot/chat", `{"sessionId":"s","respuesta":"ok"}`, func(ctx context.Context, svc *services.Services) error {
			_, err := svc.Chat.SendMessage(ctx, models.ChatRequest{Mensaje: "hola"})
			return err
		}},
		{"auth", post, "/auth/register", `{"id":1}`, func(ctx context.Context, svc *services.Services) error {
			_, err := svc.Auth.Register(ctx, models.RegisterDTO{Email: "a@b.co", Password: "x", Rol: models.RolCandidato})
			return err
		}},
	}

	for _, tc := range calls {
		t.Run(tc.name+"/con token", func(t *testing.T) {
			h := newHarness(t)
			h.handle(tc.method, tc.path, http.StatusOK, tc.body)
			h.login(t, "tok-"+tc.name)

			require.NoError(t, tc.call(context.Background(), h.svc))
			assert.Equal(t, "Bearer tok-"+tc.name, h.fake.Only(t).Header.Get("Authorization"))
		})
		t.Run(tc.name+"/sin token", func(t *testing.T) {
			h := newHarness(t)
			h.handle(tc.method, tc.path, http.StatusOK, tc.body)

			require.NoError(t, tc.call(context.Background(), h.svc))
			_, present := h.fake.Only(t).Header["Authorization"]
			assert.False(t, present, "Authorization header must be absent")
		})
	}
}
