package main

import (
	"os"
	"os/signal"
	"syscall"

	watchhttp "github.com/fwojciec/watchapi/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled
// or the process receives an interrupt.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := watchhttp.NewServer()
	server.Addr = c.Addr
	server.Collections = deps.Collections
	server.Logger = deps.Logger

	if err := server.Open(); err != nil {
		deps.Logger.Error("failed to start server", "addr", c.Addr, "err", err)
		return err
	}
	deps.Logger.Info("listening", "url", server.URL())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down")
		return server.Close()
	})
	return g.Wait()
}
