package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/enigmactf/enigma/internal/api"
	"github.com/enigmactf/enigma/internal/api/handler"
	"github.com/enigmactf/enigma/internal/auth"
	"github.com/enigmactf/enigma/internal/config"
	"github.com/enigmactf/enigma/internal/database"
	"github.com/enigmactf/enigma/internal/engine"
	"github.com/enigmactf/enigma/internal/importer"
	"github.com/enigmactf/enigma/internal/puzzle"
	"github.com/enigmactf/enigma/internal/puzzle/round1"
	"github.com/enigmactf/enigma/internal/team"
)

const (
	testTeamID   = "123"
	testTeamName = "Team Test"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "gen-operator-key" {
		genOperatorKey(cfg.BcryptCost)
		return
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	store := team.NewStore(db.Pool())

	if len(args) > 0 {
		switch args[0] {
		case "seed-test-team":
			seedTestTeam(ctx, store)
			return
		case "import":
			path := "teams_list.csv"
			if len(args) > 1 {
				path = args[1]
			}
			importRoster(ctx, store, path)
			return
		default:
			slog.Error("unknown command", "command", args[0])
			os.Exit(1)
		}
	}

	manifest, err := puzzle.LoadManifest(cfg.RoundManifest)
	if err != nil {
		slog.Error("failed to load round manifest", "error", err)
		os.Exit(1)
	}

	catalog := round1.Catalog(store, round1.Options{
		SubmitURL: cfg.SubmitURL(),
		FileURL:   cfg.FileURL(),
		FilesDir:  cfg.FilesDir,
	})

	registry, err := puzzle.FromManifest(manifest, catalog)
	if err != nil {
		slog.Error("failed to load puzzle registry", "error", err)
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterDeps{
		Engine:   engine.New(store, registry),
		Store:    store,
		Auth:     auth.NewService(cfg.OperatorKeyHash),
		DBPinger: db,
		Version:  cfg.Version,
		Puzzles:  registry.Len(),
		Links: handler.Links{
			Questions:    cfg.QuestionsURL(),
			Submit:       cfg.SubmitURL(),
			Hint:         cfg.HintURL(),
			File:         cfg.FileURL(),
			Instructions: cfg.InstructionsURL(),
		},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting enigma server", "port", cfg.Port, "version", cfg.Version, "round", manifest.Round, "puzzles", registry.Len())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// genOperatorKey prints a fresh operator key and its hash. The raw key is
// shown once; only the hash goes into OPERATOR_KEY_HASH.
func genOperatorKey(bcryptCost int) {
	rawKey, hash, err := auth.GenerateKey(bcryptCost)
	if err != nil {
		slog.Error("failed to generate operator key", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Operator key (save it now, it is not stored): %s\n", rawKey)
	fmt.Printf("OPERATOR_KEY_HASH=%s\n", hash)
}

func seedTestTeam(ctx context.Context, store team.Store) {
	exists, err := store.Exists(ctx, testTeamID)
	if err != nil {
		slog.Error("failed to check test team", "error", err)
		os.Exit(1)
	}
	if exists {
		slog.Info("test team already exists", "teamId", testTeamID, "teamName", testTeamName)
		return
	}
	if _, err := store.CreateTeam(ctx, testTeamID, testTeamName); err != nil {
		slog.Error("failed to create test team", "error", err)
		os.Exit(1)
	}
	slog.Info("test team created", "teamId", testTeamID, "teamName", testTeamName)
}

func importRoster(ctx context.Context, store team.Store, path string) {
	result, err := importer.ImportRoster(ctx, store, path)
	if err != nil {
		slog.Error("failed to import roster", "error", err, "path", path)
		os.Exit(1)
	}
	slog.Info("roster imported", "path", path, "rows", result.Rows, "created", result.Created)
}
