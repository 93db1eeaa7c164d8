// Package httpapi is the HTTP/JSON surface of the service.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/signkeeper/internal/logging"
	sc "github.com/dmitrijs2005/signkeeper/internal/server/config"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address        string
	logger         logging.Logger
	services       Services
	clientBaseURL  string
	production     bool
	maxUploadBytes int64
}

func NewHTTPServer(config *sc.Config, l logging.Logger, services Services) *HTTPServer {
	return &HTTPServer{
		address:        config.EndpointAddr,
		logger:         l.With("module", "http_server"),
		services:       services,
		clientBaseURL:  config.ClientBaseURL,
		production:     config.IsProduction(),
		maxUploadBytes: config.MaxUploadBytes,
	}
}

// Router wires every route; exposed separately so tests can drive it with
// httptest.
func (s *HTTPServer) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.clientBaseURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/verify-otp", s.handleVerifyOTP)
			r.Post("/login", s.handleLogin)
		})

		r.Route("/docs", func(r chi.Router) {
			r.Use(s.withAuth)
			r.Post("/upload", s.handleDocumentUpload)
			r.Get("/", s.handleDocumentList)
			r.Delete("/{id}", s.handleDocumentDelete)
		})

		r.Route("/signatures", func(r chi.Router) {
			r.Use(s.withAuth)
			r.Post("/", s.handleSignatureSave)
			r.Get("/{id}", s.handleSignatureList)
		})

		r.Route("/saved-signature", func(r chi.Router) {
			r.Use(s.withAuth)
			r.Post("/save", s.handleSavedSignatureSave)
			r.Get("/me", s.handleSavedSignatureGet)
			r.Delete("/delete/{index}", s.handleSavedSignatureDelete)
		})

		r.Route("/public-signature", func(r chi.Router) {
			r.With(s.withAuth).Post("/request", s.handlePublicLinkRequest)
			r.Get("/view/{token}", s.handlePublicLinkView)
			r.Post("/confirm/{token}", s.handlePublicLinkConfirm)
		})

		r.With(s.withAuth).Get("/audit/{fileId}", s.handleAuditList)
	})

	return r
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Document Signature App Backend"))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
