package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	spraychi "github.com/fwojciec/spraydoc/chi"
	"github.com/fwojciec/spraydoc/fs"
	sprayslog "github.com/fwojciec/spraydoc/slog"
	"github.com/fwojciec/spraydoc/typeahead"
)

const shutdownTimeout = 5 * time.Second

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	engine := newEngine(deps, c.Version, typeahead.DefaultLimit)
	pages := sprayslog.NewLoggingFetcher(fs.NewDirSource(c.Dir), deps.Logger)
	handler := spraychi.NewServer(pages, deps.Linker, engine, http.FileServer(http.Dir(c.Dir)), deps.Logger)

	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	fmt.Fprintf(deps.Stdout, "Serving %s on http://%s\n", c.Dir, c.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-deps.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		deps.Logger.Error("shutdown", "err", err)
		return err
	}
	deps.Logger.Info("server stopped")
	return nil
}
