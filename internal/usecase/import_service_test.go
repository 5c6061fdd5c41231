package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/school-tournament/internal/domain/referee"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/memory"
)

type importFixture struct {
	teams    *memory.TeamRepository
	players  *memory.PlayerRepository
	referees *memory.RefereeRepository
	svc      *ImportService
}

func newImportFixture(workers int) *importFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	teams := memory.NewTeamRepository(memory.SeedTeams())
	players := memory.NewPlayerRepository(nil)
	referees := memory.NewRefereeRepository(nil)
	return &importFixture{
		teams:    teams,
		players:  players,
		referees: referees,
		svc:      NewImportService(teams, players, referees, workers, logger),
	}
}

func TestImportTeamsBestEffort(t *testing.T) {
	f := newImportFixture(1)

	csv := strings.Join([]string{
		"name,class_name,rating",
		"7.B Sharks,7.B,1350",
		",7.C,1300",
		"6.A Owls,6.A,not-a-number",
		"6.B Bears,6.B,1280",
	}, "\n")

	report, err := f.svc.ImportTeams(context.Background(), "teams.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 2, report.Failed)
	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "row 3")
	assert.Contains(t, report.Errors[1], "row 4")

	teams, err := f.teams.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, teams, len(memory.SeedTeams())+2)
}

func TestImportPlayersConcurrent(t *testing.T) {
	f := newImportFixture(4)

	rows := []string{"team_id,first_name,last_name,birth_date,position"}
	rows = append(rows,
		"1,Ondrej,Kral,2011-03-07,DEF",
		"1,Marek,Benes,2011-11-22,MID",
		"2,Lucie,Novotna,2012-02-14,ATT",
		"2,Filip,Urban,2011-08-01,GK",
		"x,Bad,Row,2011-01-01,GK",
		"1,Adam,Vesely,2011-06-30,SWEEPER",
		"1,Jana,Kratka,30-06-2011,DEF",
	)

	report, err := f.svc.ImportPlayers(context.Background(), "players.csv", strings.NewReader(strings.Join(rows, "\n")))
	require.NoError(t, err)

	assert.Equal(t, 7, report.Total)
	assert.Equal(t, 4, report.Imported)
	assert.Equal(t, 3, report.Failed)

	imported, err := f.players.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, imported, 4)
	for _, p := range imported {
		assert.True(t, p.Position.Valid(), "position %q", p.Position)
	}

	byTeam, err := f.players.ListByTeam(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, byTeam, 2)
}

func TestImportReferees(t *testing.T) {
	f := newImportFixture(1)

	csv := strings.Join([]string{
		"full_name,email,level,active",
		"Pavel Novy,pavel.novy@school.example,teacher,true",
		"Iva Tichá,iva.ticha@school.example,student,",
		"Bad Email,not-an-email,teacher,true",
		"Wrong Level,wrong.level@school.example,principal,true",
	}, "\n")

	report, err := f.svc.ImportReferees(context.Background(), "referees.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 2, report.Failed)

	// listing sorts by full name, so Iva comes before Pavel
	all, err := f.referees.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, referee.LevelStudent, all[0].Level)
	// empty active column defaults to true
	assert.True(t, all[0].Active)
	assert.Equal(t, referee.LevelTeacher, all[1].Level)
}

func TestImportPlayersShortRows(t *testing.T) {
	f := newImportFixture(2)

	csv := "team_id,first_name,last_name,birth_date,position\n1,OnlyFirst"

	report, err := f.svc.ImportPlayers(context.Background(), "players.csv", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 0, report.Imported)
	assert.Equal(t, 1, report.Failed)

	all, err := f.players.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
