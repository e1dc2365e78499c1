// Comando inventario: cliente de consola de la API.
//
//	inventario availability <projectId> [--json]   disponibilidad de componentes de un proyecto
//	inventario unread [--interval 30s]              contador de notificaciones sin leer (hasta Ctrl+C)
//	inventario search <texto>                       búsqueda de ítems por código o nombre
//
// La URL base y el token salen de API_BASE_URL / API_TOKEN y pueden sobrescribirse con flags.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	appavailability "github.com/jhoicas/inventario-proyectos/internal/application/availability"
	"github.com/jhoicas/inventario-proyectos/internal/application/notification"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/infrastructure/restapi"
	"github.com/jhoicas/inventario-proyectos/pkg/config"
	"github.com/jhoicas/inventario-proyectos/pkg/logger"
)

const usage = `uso: inventario [flags] <comando> [args]

comandos:
  availability <projectId>   disponibilidad de componentes de un proyecto
  unread                     contador de notificaciones sin leer (Ctrl+C para salir)
  search <texto>             búsqueda de ítems por código o nombre

flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "cargar configuración:", err)
		return 1
	}

	fs := pflag.NewFlagSet("inventario", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	baseURL := fs.String("base-url", cfg.API.BaseURL, "URL base de la API")
	token := fs.String("token", cfg.API.Token, "Bearer token")
	timeout := fs.Duration("timeout", cfg.API.Timeout(), "timeout por petición")
	interval := fs.Duration("interval", cfg.API.PollInterval(), "intervalo de refresco del contador")
	asJSON := fs.Bool("json", false, "salida JSON")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	log := logger.NewWithWriter(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}, stderr)
	client := restapi.NewClient(*baseURL, *token, *timeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd := fs.Arg(0); cmd {
	case "availability":
		if fs.NArg() != 2 {
			fs.Usage()
			return 2
		}
		id, err := strconv.ParseInt(fs.Arg(1), 10, 64)
		if err != nil || id <= 0 {
			fmt.Fprintln(stderr, "projectId inválido:", fs.Arg(1))
			return 2
		}
		uc := appavailability.NewUseCase(client, nil, log.Component("availability"))
		res, err := uc.Check(ctx, id)
		if err != nil {
			return fail(stderr, err)
		}
		if *asJSON {
			return writeJSON(stdout, res)
		}
		printAvailability(stdout, res)
		if !res.AllItemsAvailable {
			return 3
		}
		return 0

	case "unread":
		counter := notification.NewUnreadCounter(client, *interval, log.Component("unread"))
		counter.OnChange(func(n int64) {
			fmt.Fprintf(stdout, "%s  notificaciones sin leer: %d\n", time.Now().Format("15:04:05"), n)
		})
		counter.Start(ctx)
		<-ctx.Done()
		counter.Stop()
		return 0

	case "search":
		if fs.NArg() != 2 {
			fs.Usage()
			return 2
		}
		items, err := client.SearchInventory(ctx, fs.Arg(1))
		if err != nil {
			return fail(stderr, err)
		}
		if *asJSON {
			return writeJSON(stdout, items)
		}
		printItems(stdout, items)
		return 0

	default:
		fmt.Fprintf(stderr, "comando desconocido %q\n", cmd)
		fs.Usage()
		return 2
	}
}

func fail(w io.Writer, err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(w, "no encontrado:", err)
	case errors.Is(err, domain.ErrUnknownItem):
		fmt.Fprintln(w, "inconsistencia de datos:", err)
	default:
		fmt.Fprintln(w, "error:", err)
	}
	return 1
}

func writeJSON(w io.Writer, v any) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return 1
	}
	return 0
}
