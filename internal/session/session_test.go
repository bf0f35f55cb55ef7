package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthire/smarthire_client/internal/session"
	"github.com/smarthire/smarthire_client/internal/storage"
	"github.com/smarthire/smarthire_client/models"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestLoad_EmptyStoreHasNoRole(t *testing.T) {
	s, err := session.Load(context.Background(), storage.NewMemoryStore())
	require.NoError(t, err)
	assert.Equal(t, "", s.Rol())
	assert.False(t, s.IsCandidato())
}

func TestLoad_RoleFromStoredUser(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyUser, `{"id":3,"nombre":"Ana","email":"ana@x.co","rol":"CANDIDATO"}`))

	s, err := session.Load(ctx, store)
	require.NoError(t, err)
	require.NotNil(t, s.User)
	assert.Equal(t, 3, s.User.Id.Int())
	assert.True(t, s.IsCandidato(), "role comparison is case-insensitive")
}

func TestLoad_RoleFromNestedProfileMarker(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyUser, `{"id":"8","nombre":"Luis","email":"l@x.co","reclutador":{"id":2}}`))

	s, err := session.Load(ctx, store)
	require.NoError(t, err)
	assert.True(t, s.IsReclutador())
	assert.False(t, s.IsCandidato())
}

func TestLoad_RoleFromTokenClaims(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{"rol claim", jwt.MapClaims{"sub": "1", "rol": "candidato"}, models.RolCandidato},
		{"role claim", jwt.MapClaims{"sub": "1", "role": "Empresa"}, models.RolEmpresa},
		{"roles array", jwt.MapClaims{"sub": "1", "roles": []string{"reclutador"}}, models.RolReclutador},
		{"no role", jwt.MapClaims{"sub": "1"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			require.NoError(t, store.Set(ctx, storage.KeyToken, signed(t, tc.claims)))

			s, err := session.Load(ctx, store)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Rol())
		})
	}
}

func TestLoad_MalformedTokenHasNoRole(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyToken, "not-a-jwt"))

	s, err := session.Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "not-a-jwt", s.Token)
	assert.False(t, s.IsCandidato())
}

func TestLoad_InvalidUserPayload(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyUser, `{not json`))

	_, err := session.Load(ctx, store)
	assert.Error(t, err)
}

func TestSaveAndClear(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	require.NoError(t, session.Save(ctx, store, "tok", models.Usuario{Id: 5, Nombre: "Eva", Email: "e@x.co", Rol: models.RolCandidato}))
	s, err := session.Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)
	assert.True(t, s.IsCandidato())

	require.NoError(t, session.Clear(ctx, store))
	_, ok, _ := store.Get(ctx, storage.KeyToken)
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, storage.KeyUser)
	assert.False(t, ok)
}

// tokenWriteFails delega en un MemoryStore pero rechaza escribir el token.
type tokenWriteFails struct {
	*storage.MemoryStore
}

func (s tokenWriteFails) Set(ctx context.Context, key, value string) error {
	if key == storage.KeyToken {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func TestSave_FailedTokenWriteLeavesNoPartialSession(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Set(ctx, storage.KeyUser, `{"id":1,"nombre":"Previo","email":"p@x.co","rol":"empresa"}`))

	err := session.Save(ctx, tokenWriteFails{mem}, "tok", models.Usuario{Id: 5, Nombre: "Eva", Email: "e@x.co", Rol: models.RolCandidato})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	_, ok, _ := mem.Get(ctx, storage.KeyUser)
	assert.False(t, ok, "user must not outlive a failed save")
	_, ok, _ = mem.Get(ctx, storage.KeyToken)
	assert.False(t, ok)

	s, err := session.Load(ctx, mem)
	require.NoError(t, err)
	assert.Equal(t, "", s.Rol())
}
