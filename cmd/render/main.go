package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"arbitrage-dashboard-go/internal/config"
	"arbitrage-dashboard-go/internal/logger"
	"arbitrage-dashboard-go/internal/orders"
	"arbitrage-dashboard-go/internal/render"
	"go.uber.org/zap"
)

// render loads orders.csv once and writes the card page as static HTML.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

// run performs a single load and writes the page to -out, or to stdout when -out is empty.
// Nothing is written if the load fails.
func run(ctx context.Context, args []string, stdout io.Writer) (err error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	configDir := fs.String("configs", "./configs", "directory holding config.yml")
	out := fs.String("out", "", "write the page to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		return fmt.Errorf("could not init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	client, err := orders.NewClient(&cfg.Feed, log.Named("orders"))
	if err != nil {
		return err
	}

	container := render.NewContainer()
	if err := render.NewLoader(client, log).LoadData(ctx, container); err != nil {
		log.Error("Render aborted", zap.String("url", client.URL()))
		return err
	}

	w := stdout
	if *out != "" {
		f, ferr := os.Create(*out)
		if ferr != nil {
			return fmt.Errorf("failed to create output file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		w = f
	}

	if err := (render.Page{Title: cfg.Page.Title, Container: container}).Write(w); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	log.Info("Page rendered", zap.Int("cards", container.Len()), zap.String("out", *out))
	return nil
}
