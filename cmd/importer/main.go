package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/school-tournament/internal/app"
	"github.com/riskibarqy/school-tournament/internal/config"
	"github.com/riskibarqy/school-tournament/internal/observability"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
	"github.com/riskibarqy/school-tournament/internal/usecase"
)

func main() {
	teamsPath := flag.String("teams", "", "path to teams csv (name,class_name,rating)")
	playersPath := flag.String("players", "", "path to players csv (team_id,first_name,last_name,birth_date,position)")
	refereesPath := flag.String("referees", "", "path to referees csv (full_name,email,level,active)")
	flag.Parse()

	if *teamsPath == "" && *playersPath == "" && *refereesPath == "" {
		fmt.Fprintf(os.Stderr, "usage: %s [-teams file] [-players file] [-referees file]\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("shutdown tracing", "error", err)
		}
	}()

	db, err := app.OpenDB(cfg)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	svcLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logging.SlogLevel(cfg.LogLevel),
	}))
	services := app.NewServices(cfg, db, svcLogger)

	ctx := context.Background()
	var reports []usecase.ImportReport

	// teams first so player rows can resolve their team ids
	if *teamsPath != "" {
		reports = append(reports, runImport(ctx, logger, *teamsPath, services.Importer.ImportTeams))
	}
	if *refereesPath != "" {
		reports = append(reports, runImport(ctx, logger, *refereesPath, services.Importer.ImportReferees))
	}
	if *playersPath != "" {
		reports = append(reports, runImport(ctx, logger, *playersPath, services.Importer.ImportPlayers))
	}

	out, err := sonic.MarshalIndent(reports, "", "  ")
	if err != nil {
		logger.Error("marshal report", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func runImport(ctx context.Context, logger *logging.Logger, path string, do func(context.Context, string, io.Reader) (usecase.ImportReport, error)) usecase.ImportReport {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		logger.Error("open csv", "path", path, "error", err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	report, err := do(ctx, name, f)
	if err != nil {
		logger.Error("import failed", "file", name, "error", err)
		os.Exit(1)
	}
	return report
}
