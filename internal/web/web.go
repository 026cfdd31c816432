// Package web is the read-only HTTP server: the cacheable byte read path
// and the health endpoint. It opens the metadata store read-only and never
// mutates anything.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tonimelisma/qcdn/internal/db"
	"github.com/tonimelisma/qcdn/internal/errtypes"
	"github.com/tonimelisma/qcdn/internal/storage"
)

// Cache-Control values by serve mode. Version bytes are immutable once
// published, so production clients may cache them for a year.
const (
	cacheControlProduction  = "public, max-age=31536000, immutable"
	cacheControlDevelopment = "private, no-cache"
)

// Handler serves the read path over a read-only store and the blob tree.
type Handler struct {
	store      *db.Store
	blobs      storage.Storage
	production bool
	logger     *slog.Logger
}

// New builds the HTTP handler. production selects the long-lived
// Cache-Control policy.
func New(store *db.Store, blobs storage.Storage, production bool, logger *slog.Logger) *Handler {
	return &Handler{store: store, blobs: blobs, production: production, logger: logger}
}

// Router returns the chi router with all routes mounted. Unknown paths are
// plain 404s.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", h.health)
	r.Get("/f/{dir}/{file}/{version}", h.file)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	return r
}

// health verifies the metadata store can acquire a connection and the
// storage subdirectory is intact.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn("health: database unreachable", slog.Any("error", err))
		http.Error(w, "database unreachable", http.StatusInternalServerError)

		return
	}

	if err := h.blobs.Ping(); err != nil {
		h.logger.Warn("health: storage unreachable", slog.Any("error", err))
		http.Error(w, "storage unreachable", http.StatusInternalServerError)

		return
	}

	fmt.Fprint(w, "Ok")
}

// file resolves /f/{dir}/{file}/{version-or-tag} to a ready version and
// streams its bytes, honoring If-None-Match and If-Modified-Since.
func (h *Handler) file(w http.ResponseWriter, r *http.Request) {
	meta, err := h.store.VersionMetaByPath(r.Context(),
		chi.URLParam(r, "dir"), chi.URLParam(r, "file"), chi.URLParam(r, "version"))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	lastModified := meta.CreatedAt.UTC().Format(http.TimeFormat)

	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, meta.Hash) {
		w.WriteHeader(http.StatusNotModified)

		return
	}

	if since := r.Header.Get("If-Modified-Since"); since == lastModified {
		w.WriteHeader(http.StatusNotModified)

		return
	}

	f, err := h.blobs.Open(meta.StoragePath)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	defer f.Close()

	w.Header().Set("ETag", meta.Hash)
	w.Header().Set("Last-Modified", lastModified)
	w.Header().Set("Content-Type", meta.MediaType)

	if h.production {
		w.Header().Set("Cache-Control", cacheControlProduction)
	} else {
		w.Header().Set("Cache-Control", cacheControlDevelopment)
	}

	if _, err := io.Copy(w, f); err != nil {
		// Headers are gone; all we can do is log the broken transfer.
		h.logger.Warn("file: streaming aborted",
			slog.String("path", r.URL.Path), slog.Any("error", err))
	}
}

// fail maps an error to its HTTP status without leaking internals.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := errtypes.HTTPStatus(err)

	if code == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		http.Error(w, "Internal Server Error", code)

		return
	}

	http.Error(w, http.StatusText(code), code)
}

// Serve runs an HTTP server for the handler on addr until ctx is
// cancelled, then shuts down gracefully.
func (h *Handler) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		h.logger.Info("http server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		h.logger.Info("stopping http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	}
}
