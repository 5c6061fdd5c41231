package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/school-tournament/internal/config"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/school-tournament/internal/usecase"
)

// OpenDB connects to postgres with OpenTelemetry instrumentation, so
// every query shows up as a span under the active trace.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	return db, nil
}

// Services bundles the wired service layer.
type Services struct {
	Tournaments *usecase.TournamentService
	Teams       *usecase.TeamService
	Players     *usecase.PlayerService
	Referees    *usecase.RefereeService
	Matches     *usecase.MatchService
	MatchEvents *usecase.MatchEventService
	Importer    *usecase.ImportService
}

// NewServices wires the postgres repositories into the service layer.
func NewServices(cfg config.Config, db *sqlx.DB, logger *slog.Logger) *Services {
	store := postgres.NewStore(db)

	tournamentRepo := postgres.NewTournamentRepository(store)
	teamRepo := postgres.NewTeamRepository(store)
	playerRepo := postgres.NewPlayerRepository(store)
	refereeRepo := postgres.NewRefereeRepository(store)
	matchRepo := postgres.NewMatchRepository(store)
	eventRepo := postgres.NewMatchEventRepository(store)

	return &Services{
		Tournaments: usecase.NewTournamentService(tournamentRepo, logger),
		Teams:       usecase.NewTeamService(teamRepo, logger),
		Players:     usecase.NewPlayerService(playerRepo, logger),
		Referees:    usecase.NewRefereeService(refereeRepo, logger),
		Matches:     usecase.NewMatchService(matchRepo, logger),
		MatchEvents: usecase.NewMatchEventService(eventRepo, logger),
		Importer:    usecase.NewImportService(teamRepo, playerRepo, refereeRepo, cfg.ImportWorkers, logger),
	}
}
