package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/beego/beego/v2/core/logs"

	"github.com/smarthire/smarthire_client/internal/clients"
	internalhelpers "github.com/smarthire/smarthire_client/internal/helpers"
	"github.com/smarthire/smarthire_client/internal/profile"
	"github.com/smarthire/smarthire_client/internal/services"
	"github.com/smarthire/smarthire_client/internal/session"
	"github.com/smarthire/smarthire_client/models"
)

const usage = `uso: smarthire <comando> [argumentos]

  login <email> <password>    inicia sesión y guarda el token
  logout                      borra la sesión local
  sesion                      muestra el API configurado y el rol de la sesión
  perfil                      muestra el perfil del candidato
  foto                        muestra la foto de perfil en caché
  vacantes [-estado abierta]  lista las vacantes
  postulaciones [-page n]     lista mis postulaciones
  cv <imagen>                 extrae el perfil desde la imagen de un CV

La configuración se lee de SMARTHIRE_CONFIG o de conf/app.conf.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	svc := services.Default()
	api := clients.API()

	err := run(ctx, os.Stdout, svc, api, os.Args[1], os.Args[2:])
	api.Close()
	stop()
	if err != nil {
		logs.Error(err)
		os.Exit(1)
	}
}

// sesionInfo es lo que imprime el comando sesion.
type sesionInfo struct {
	BaseURL     string `json:"base_url"`
	Rol         string `json:"rol"`
	Candidato   bool   `json:"candidato"`
	Empresa     bool   `json:"empresa"`
	Reclutador  bool   `json:"reclutador"`
	Autenticado bool   `json:"autenticado"`
}

func run(ctx context.Context, w io.Writer, svc *services.Services, api *clients.APIClient, cmd string, args []string) error {
	switch cmd {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("login requiere email y password")
		}
		out, err := svc.Auth.Login(ctx, models.LoginDTO{Email: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		return printJSON(w, out.User)
	case "logout":
		return svc.Auth.Logout(ctx)
	case "sesion":
		s, err := session.Load(ctx, api.Store())
		if err != nil {
			return err
		}
		return printJSON(w, sesionInfo{
			BaseURL:     api.BaseURL(),
			Rol:         s.Rol(),
			Candidato:   s.IsCandidato(),
			Empresa:     s.IsEmpresa(),
			Reclutador:  s.IsReclutador(),
			Autenticado: s.Token != "",
		})
	case "perfil":
		p, err := svc.Candidato.GetProfile(ctx)
		if err != nil {
			return err
		}
		return printJSON(w, p)
	case "foto":
		pc := profile.NewContext(svc.Candidato, api.Store())
		pc.Init(ctx)
		if foto := pc.FotoPerfil(); foto != nil {
			fmt.Fprintln(w, *foto)
		}
		return nil
	case "vacantes":
		fs := flag.NewFlagSet("vacantes", flag.ContinueOnError)
		estado := fs.String("estado", "", "abierta, cerrada o pausada")
		empresa := fs.String("empresa", "", "id de la empresa")
		modalidad := fs.String("modalidad", "", "id de la modalidad")
		if err := fs.Parse(args); err != nil {
			return err
		}
		var filters *models.VacanteFilters
		if *estado != "" || *empresa != "" || *modalidad != "" {
			filters = &models.VacanteFilters{Estado: models.EstadoVacante(*estado), EmpresaId: *empresa, ModalidadId: *modalidad}
		}
		list, err := svc.Vacantes.List(ctx, filters)
		if err != nil {
			return err
		}
		return printJSON(w, list)
	case "postulaciones":
		fs := flag.NewFlagSet("postulaciones", flag.ContinueOnError)
		pageStr := fs.String("page", "", "página (por defecto 1)")
		limitStr := fs.String("limit", "", "tamaño de página (por defecto 10)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		page, limit := internalhelpers.ParsePageSize(*pageStr, *limitStr)
		out, err := svc.Postulaciones.ListMine(ctx, page, limit)
		if err != nil {
			return err
		}
		return printJSON(w, out)
	case "cv":
		if len(args) != 1 {
			return fmt.Errorf("cv requiere la ruta de la imagen")
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		dataURL, err := internalhelpers.ImageDataURL(f, internalhelpers.DefaultCVMaxDimension, internalhelpers.DefaultCVQuality)
		if err != nil {
			return err
		}
		out, err := svc.Candidato.ParseCV(ctx, dataURL)
		if err != nil {
			return err
		}
		return printJSON(w, out)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("comando desconocido %q", cmd)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
