package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"impractical.co/view"
)

const (
	defaultAddr     = ":8080"
	indexView       = "index"
	shutdownTimeout = 10 * time.Second
)

func newServeCmd(root *rootFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve views over HTTP",
		Long: `Serve renders GET /<view> on every request. Query parameters become
template variables; stylesheet=1 and script=1 inject the view's assets.
GET / renders the "index" view.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			renderer, err := root.renderer()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, log, addr, newHandler(renderer, log))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "Address to listen on")
	return cmd
}

func serve(ctx context.Context, log *slog.Logger, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "serving views", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error serving views: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down: %w", err)
	}
	log.InfoContext(ctx, "server stopped")
	return nil
}

func newHandler(renderer *view.Renderer, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{view...}", func(w http.ResponseWriter, req *http.Request) {
		ctx := view.LoggingContext(req.Context(), log)

		name := req.PathValue("view")
		if name == "" {
			name = indexView
		}

		query := req.URL.Query()
		var opts []view.RenderOption
		if query.Get("stylesheet") == "1" {
			opts = append(opts, view.WithStylesheet())
		}
		if query.Get("script") == "1" {
			opts = append(opts, view.WithScript())
		}
		query.Del("stylesheet")
		query.Del("script")

		vars := make(view.Vars, len(query))
		for k := range query {
			vars[k] = query.Get(k)
		}

		resp, err := renderer.Render(ctx, name, vars, nil, opts...)
		if err != nil {
			resp = errorResponse(err)
		}
		if err := resp.Write(w); err != nil {
			log.ErrorContext(ctx, "error writing response", "view", name, "error", err)
		}
	})
	return mux
}

func errorResponse(err error) *view.Response {
	status, message := http.StatusInternalServerError, "server error"
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, view.ErrInvalidView) {
		status, message = http.StatusNotFound, "not found"
	}
	resp, marshalErr := view.HTTP(status, map[string]string{"error": message}, view.Header{"Content-Type": "application/json"})
	if marshalErr != nil {
		return &view.Response{StatusCode: status, Headers: view.SecurityHeaders()}
	}
	return resp
}
