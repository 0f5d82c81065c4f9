package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/yhkl-dev/navisonic/config"
	"github.com/yhkl-dev/navisonic/coverart"
	"github.com/yhkl-dev/navisonic/library"
	"github.com/yhkl-dev/navisonic/logging"
	"github.com/yhkl-dev/navisonic/subsonic"
	"github.com/yhkl-dev/navisonic/testkit"
	"github.com/yhkl-dev/navisonic/ui"
)

const usage = `Usage: navisonic [flags] <command> [args]

Commands:
  ping              check connectivity and report the server's protocol version
  report            run the conformance checks against the server
  search <query>    search songs
  random            list random songs
  starred           list starred artists, albums and songs
  playlists         list playlists
  cover <id>        render cover art as ASCII

Flags:
`

type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	client *subsonic.Client
	lib    library.Library
	out    io.Writer
	limit  int
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"log-level":   "log.level",
		"log-format":  "log.format",
		"format":      "client.format",
		"output":      "report.output",
		"concurrency": "report.concurrency",
		"server":      "server.url",
	}
	for flag, key := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("navisonic", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configPath := fs.StringP("config", "c", "", "config file (default $HOME/.config/navisonic/config.toml)")
	limit := fs.IntP("limit", "n", 20, "maximum number of songs to list")
	fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
	fs.String("log-format", "", "log format (console or json)")
	fs.String("format", "", "response format requested from the server (json or xml)")
	fs.StringP("output", "o", "", "report output (text or yaml)")
	fs.Int("concurrency", 0, "checks run in parallel by report")
	fs.String("server", "", "server URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("missing command")
	}

	v := config.New()
	if err := bindFlags(v, fs); err != nil {
		return err
	}
	cfg, err := config.Load(v, *configPath)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Options{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: stderr,
	})
	opts, err := cfg.ClientOptions(&logger)
	if err != nil {
		return err
	}
	client := subsonic.NewClient(opts)

	a := &app{
		cfg:    cfg,
		log:    logger,
		client: client,
		lib:    library.NewSubsonicLibrary(client),
		out:    stdout,
		limit:  *limit,
	}
	return a.dispatch(ctx, fs.Arg(0), fs.Args()[1:])
}

func (a *app) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "ping":
		return a.ping(ctx)
	case "report":
		return a.report(ctx)
	case "search":
		if len(args) == 0 {
			return fmt.Errorf("search: missing query")
		}
		songs, err := a.lib.SearchSongs(ctx, strings.Join(args, " "), a.limit)
		if err != nil {
			return err
		}
		return ui.WriteSongs(a.out, songs)
	case "random":
		songs, err := a.lib.GetRandomSongs(ctx, a.limit)
		if err != nil {
			return err
		}
		return ui.WriteSongs(a.out, songs)
	case "starred":
		favorites, err := a.lib.GetFavorites(ctx)
		if err != nil {
			return err
		}
		return ui.WriteFavorites(a.out, favorites)
	case "playlists":
		playlists, err := a.lib.GetPlaylists(ctx)
		if err != nil {
			return err
		}
		return ui.WritePlaylists(a.out, playlists)
	case "cover":
		if len(args) != 1 {
			return fmt.Errorf("cover: expected one cover art id")
		}
		ascii, err := coverart.NewConverter().RenderCover(ctx, a.client, args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, ascii)
		return err
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) ping(ctx context.Context) error {
	env, err := a.client.Connect(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: ok, protocol %s", a.cfg.Server.URL, env.Version)
	if env.Type != "" {
		fmt.Fprintf(a.out, ", %s %s", env.Type, env.ServerVersion)
	}
	if env.OpenSubsonic {
		fmt.Fprint(a.out, ", OpenSubsonic")
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *app) report(ctx context.Context) error {
	report, checkErr := testkit.Run(ctx, a.client, testkit.DefaultChecks(), a.cfg.Report.Concurrency)

	var err error
	if a.cfg.Report.Output == "yaml" {
		err = report.WriteYAML(a.out)
	} else {
		err = report.WriteText(a.out)
	}
	if err != nil {
		return err
	}
	if checkErr != nil {
		a.log.Debug().Err(checkErr).Msg("checks failed")
		return fmt.Errorf("%d of %d checks failed", report.Failed, len(report.Results))
	}
	return nil
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
