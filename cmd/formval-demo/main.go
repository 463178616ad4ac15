// Command formval-demo runs a small HTTP server that drives the validation
// engine the way a UI layer would: a signup form with composed rules, a
// cross-field confirmation check, and a debounced asynchronous username
// lookup.
package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/formval"
	"github.com/dmitrymomot/formval/pkg/rules"
	"github.com/dmitrymomot/formval/pkg/validate"
)

type config struct {
	Addr          string        `env:"ADDR" envDefault:":8080"`
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY" envDefault:"300ms"`
	LookupLatency time.Duration `env:"LOOKUP_LATENCY" envDefault:"150ms"`
}

func main() {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: newRouter(cfg, logger),
	}
	logger.Info("listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}

func newRouter(cfg config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/signup", signupHandler(cfg, logger))
	return r
}

// takenUsernames stands in for the user store an async validator would hit.
var takenUsernames = map[string]bool{
	"admin":   true,
	"root":    true,
	"support": true,
}

func checkUsernameFree(latency time.Duration) validate.Func {
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		select {
		case <-time.After(latency):
		case <-ctx.Done():
			return "", ctx.Err()
		}
		if s, ok := value.(string); ok && takenUsernames[strings.ToLower(s)] {
			return "This username is taken", nil
		}
		return "", nil
	}
}

func signupSchema(cfg config) formval.Fields {
	return formval.Fields{
		"username": validate.Compose(
			rules.Required(),
			rules.MinLength(3),
			rules.Alphanumeric(),
			validate.Async(checkUsernameFree(cfg.LookupLatency), cfg.DebounceDelay),
		),
		"email": validate.Compose(
			rules.Required(),
			rules.Email(),
		),
		"password": validate.Compose(
			rules.Required(),
			rules.MinLength(8),
		),
		"confirm_password": validate.Compose(
			rules.Required(),
			rules.Matches("password"),
		),
		"zip": validate.When(
			func(values validate.Values) bool { return values["country"] == "US" },
			validate.Compose(rules.Required(), rules.PostalCode()),
		),
	}
}

func signupHandler(cfg config, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		form := formval.New(signupSchema(cfg),
			formval.WithValues(validate.Values(payload)),
			formval.WithLogger(logger),
		)

		errs, err := form.Validate(r.Context())
		if err != nil {
			logger.Error("validation fault", "error", err)
			http.Error(w, "validation unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if !errs.IsEmpty() {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]any{"errors": errs})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
