package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/watchapi"
	"github.com/fwojciec/watchapi/collection"
	"github.com/fwojciec/watchapi/config"
	"github.com/fwojciec/watchapi/goquery"
	wslog "github.com/fwojciec/watchapi/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	_ = m.Close()
	if err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFiles are loaded into the environment before flags are parsed.
	// Missing files are skipped.
	EnvFiles []string

	// Collections overrides the configured service. Used for end-to-end testing.
	Collections watchapi.CollectionService

	closers []func() error
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{EnvFiles: []string{".env"}}
}

// Close releases fetchers opened by Run.
func (m *Main) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	m.closers = nil
	return first
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := loadEnvFiles(m.EnvFiles); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("watchapi"),
		kong.Description("Serve and query a watch collection page."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		err = fmt.Errorf("failed to create parser: %w", err)
		fmt.Fprintln(stderr, err)
		return err
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'watchapi --help' to see available commands")
		fmt.Fprintln(stderr, err)
		return err
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	deps.Logger, err = newLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	deps.Collections = m.Collections
	if deps.Collections == nil {
		cfg := config.Default()
		if cli.Config != "" {
			if cfg, err = config.Load(cli.Config); err != nil {
				fmt.Fprintf(stderr, "error: %s\n", watchapi.ErrorMessage(err))
				return err
			}
		}

		source, closeSource, err := buildSource(cfg, deps.Logger)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", watchapi.ErrorMessage(err))
			return err
		}
		m.closers = append(m.closers, closeSource)

		deps.Collections = wslog.NewLoggingCollectionService(&collection.Service{
			Source:    wslog.NewLoggingDocumentSource(source, deps.Logger),
			Extractor: goquery.NewExtractor(),
			Logger:    deps.Logger,
		}, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// loadEnvFiles loads each existing file with godotenv. Variables already
// set in the environment win.
func loadEnvFiles(paths []string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
