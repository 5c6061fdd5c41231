package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/school-tournament/internal/domain/player"
	"github.com/riskibarqy/school-tournament/internal/domain/referee"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
)

const birthDateLayout = "2006-01-02"

// ImportReport summarizes one best-effort CSV pass. Row numbers in
// Errors are 1-based and count the header.
type ImportReport struct {
	File     string   `json:"file"`
	Total    int      `json:"total"`
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

type teamRow struct {
	Name      string  `validate:"required"`
	ClassName string  `validate:"required"`
	Rating    float64 `validate:"gte=0"`
}

type playerRow struct {
	TeamID    int64  `validate:"required,gt=0"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	BirthDate string `validate:"required,datetime=2006-01-02"`
	Position  string `validate:"required,oneof=GK DEF MID ATT"`
}

type refereeRow struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Level    string `validate:"required,oneof=student teacher external"`
	Active   string `validate:"omitempty,oneof=true false"`
}

// ImportService loads seed data from CSV files. Each row is handled
// independently: a bad row is counted and reported, never aborts the
// rest of the file.
type ImportService struct {
	teams    team.Repository
	players  player.Repository
	referees referee.Repository
	validate *validator.Validate
	logger   *slog.Logger
	workers  int
}

func NewImportService(teams team.Repository, players player.Repository, referees referee.Repository, workers int, logger *slog.Logger) *ImportService {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &ImportService{
		teams:    teams,
		players:  players,
		referees: referees,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
		workers:  workers,
	}
}

// ImportTeams reads rows of name,class_name,rating.
func (s *ImportService) ImportTeams(ctx context.Context, name string, r io.Reader) (ImportReport, error) {
	report := ImportReport{File: name}
	rows, err := readRows(r, 3)
	if err != nil {
		return report, fmt.Errorf("read teams csv %s: %w", name, err)
	}

	for _, rec := range rows {
		report.Total++
		rating, err := strconv.ParseFloat(strings.TrimSpace(rec.fields[2]), 64)
		if err != nil {
			report.fail(rec.line, fmt.Errorf("rating: %w", err))
			continue
		}
		row := teamRow{
			Name:      strings.TrimSpace(rec.fields[0]),
			ClassName: strings.TrimSpace(rec.fields[1]),
			Rating:    rating,
		}
		if err := s.validate.Struct(row); err != nil {
			report.fail(rec.line, err)
			continue
		}
		_, err = s.teams.Insert(ctx, team.Team{
			Name:      row.Name,
			ClassName: row.ClassName,
			Rating:    row.Rating,
		})
		if err != nil {
			report.fail(rec.line, err)
			continue
		}
		report.Imported++
	}

	s.logImported(ctx, report)
	return report, nil
}

// ImportPlayers reads rows of team_id,first_name,last_name,birth_date,position.
// Rows are inserted through a worker pool; files routinely carry a whole
// school's roster.
func (s *ImportService) ImportPlayers(ctx context.Context, name string, r io.Reader) (ImportReport, error) {
	report := ImportReport{File: name}
	rows, err := readRows(r, 5)
	if err != nil {
		return report, fmt.Errorf("read players csv %s: %w", name, err)
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return report, fmt.Errorf("start import pool: %w", err)
	}
	defer pool.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	report.Total = len(rows)

	for _, rec := range rows {
		rec := rec
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := s.importPlayerRow(ctx, rec); err != nil {
				mu.Lock()
				report.fail(rec.line, err)
				mu.Unlock()
				return
			}
			mu.Lock()
			report.Imported++
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			report.fail(rec.line, submitErr)
			mu.Unlock()
		}
	}
	wg.Wait()

	s.logImported(ctx, report)
	return report, nil
}

func (s *ImportService) importPlayerRow(ctx context.Context, rec csvRecord) error {
	teamID, err := strconv.ParseInt(strings.TrimSpace(rec.fields[0]), 10, 64)
	if err != nil {
		return fmt.Errorf("team_id: %w", err)
	}
	row := playerRow{
		TeamID:    teamID,
		FirstName: strings.TrimSpace(rec.fields[1]),
		LastName:  strings.TrimSpace(rec.fields[2]),
		BirthDate: strings.TrimSpace(rec.fields[3]),
		Position:  strings.TrimSpace(rec.fields[4]),
	}
	if err := s.validate.Struct(row); err != nil {
		return err
	}
	birthDate, err := time.Parse(birthDateLayout, row.BirthDate)
	if err != nil {
		return fmt.Errorf("birth_date: %w", err)
	}

	_, err = s.players.Insert(ctx, player.Player{
		TeamID:    row.TeamID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		BirthDate: birthDate,
		Position:  player.Position(row.Position),
	})
	return err
}

// ImportReferees reads rows of full_name,email,level,active.
func (s *ImportService) ImportReferees(ctx context.Context, name string, r io.Reader) (ImportReport, error) {
	report := ImportReport{File: name}
	rows, err := readRows(r, 4)
	if err != nil {
		return report, fmt.Errorf("read referees csv %s: %w", name, err)
	}

	for _, rec := range rows {
		report.Total++
		row := refereeRow{
			FullName: strings.TrimSpace(rec.fields[0]),
			Email:    strings.TrimSpace(rec.fields[1]),
			Level:    strings.TrimSpace(rec.fields[2]),
			Active:   strings.TrimSpace(rec.fields[3]),
		}
		if err := s.validate.Struct(row); err != nil {
			report.fail(rec.line, err)
			continue
		}
		_, err := s.referees.Insert(ctx, referee.Referee{
			FullName: row.FullName,
			Email:    row.Email,
			Level:    referee.Level(row.Level),
			Active:   row.Active != "false",
		})
		if err != nil {
			report.fail(rec.line, err)
			continue
		}
		report.Imported++
	}

	s.logImported(ctx, report)
	return report, nil
}

func (s *ImportService) logImported(ctx context.Context, report ImportReport) {
	s.logger.InfoContext(ctx, "csv import finished",
		"file", report.File,
		"total", report.Total,
		"imported", report.Imported,
		"failed", report.Failed,
	)
}

func (r *ImportReport) fail(line int, err error) {
	r.Failed++
	r.Errors = append(r.Errors, fmt.Sprintf("row %d: %v", line, err))
}

type csvRecord struct {
	line   int
	fields []string
}

// readRows consumes the whole file, skipping the header. Short rows are
// padded so column access never panics; validation rejects them.
func readRows(r io.Reader, columns int) ([]csvRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []csvRecord
	line := 0
	for {
		rec, err := reader.Read()
		line++
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		if line == 1 {
			continue
		}
		for len(rec) < columns {
			rec = append(rec, "")
		}
		rows = append(rows, csvRecord{line: line, fields: rec})
	}
}
