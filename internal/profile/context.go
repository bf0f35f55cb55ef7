// Package profile mantiene la foto de perfil del candidato compartida por toda la aplicación.
package profile

import (
	"context"
	"io"
	"sync"

	"github.com/beego/beego/v2/core/logs"

	"github.com/smarthire/smarthire_client/internal/session"
	"github.com/smarthire/smarthire_client/internal/storage"
	"github.com/smarthire/smarthire_client/models"
)

// CandidatoAPI es lo que Context usa del servicio de candidato.
type CandidatoAPI interface {
	GetProfile(ctx context.Context) (*models.CandidatoProfile, error)
	UploadFoto(ctx context.Context, filename string, r io.Reader) (*models.FotoPerfilResponse, error)
}

// Context guarda foto_perfil_url. Es el único estado que el cliente cachea;
// se construye una vez y se comparte por referencia.
type Context struct {
	api   CandidatoAPI
	store storage.Store

	mu         sync.RWMutex
	fotoPerfil *string
}

func NewContext(api CandidatoAPI, store storage.Store) *Context {
	return &Context{api: api, store: store}
}

// FotoPerfil devuelve una copia del valor actual, nil mientras no se conozca.
func (c *Context) FotoPerfil() *string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.fotoPerfil == nil {
		return nil
	}
	v := *c.fotoPerfil
	return &v
}

// UpdateFotoPerfil reemplaza el valor sin ir a la red.
func (c *Context) UpdateFotoPerfil(url string) {
	c.set(&url)
}

func (c *Context) set(url *string) {
	c.mu.Lock()
	c.fotoPerfil = url
	c.mu.Unlock()
}

// RefreshProfile consulta el perfil y toma el foto_perfil_url del servidor (incluso si es null).
// Si falla se registra el error y se conserva el valor anterior.
func (c *Context) RefreshProfile(ctx context.Context) {
	p, err := c.api.GetProfile(ctx)
	if err != nil {
		logs.Error("no se pudo refrescar el perfil:", err)
		return
	}
	var url *string
	if p.FotoPerfilURL != nil {
		v := *p.FotoPerfilURL
		url = &v
	}
	c.set(url)
}

// Init carga la foto al arrancar, sólo si la sesión guardada es de un candidato.
func (c *Context) Init(ctx context.Context) {
	s, err := session.Load(ctx, c.store)
	if err != nil {
		logs.Error("sesión local ilegible, se omite la carga del perfil:", err)
		return
	}
	if !s.IsCandidato() {
		logs.Debug("sesión sin rol candidato (rol=%q), se omite la carga del perfil", s.Rol())
		return
	}
	c.RefreshProfile(ctx)
}

// UploadFoto sube la foto y, si el servidor la acepta, actualiza el valor local.
func (c *Context) UploadFoto(ctx context.Context, filename string, r io.Reader) error {
	out, err := c.api.UploadFoto(ctx, filename, r)
	if err != nil {
		return err
	}
	c.UpdateFotoPerfil(out.FotoPerfilURL)
	return nil
}
