package memory

import (
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/player"
	"github.com/riskibarqy/school-tournament/internal/domain/referee"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
)

// Seed ids referenced from tests.
const (
	TournamentIDWinterCup int64 = 1
	TournamentIDSpringCup int64 = 2

	TeamID9A int64 = 1
	TeamID9B int64 = 2
	TeamID8A int64 = 3

	RefereeIDNovak    int64 = 1
	RefereeIDSvoboda  int64 = 2
	RefereeIDExternal int64 = 3
)

func SeedTournaments() []tournament.Tournament {
	end := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	return []tournament.Tournament{
		{
			ID:        TournamentIDWinterCup,
			Name:      "Winter Indoor Cup",
			StartDate: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
			EndDate:   &end,
			IsActive:  true,
		},
		{
			ID:        TournamentIDSpringCup,
			Name:      "Spring Cup",
			StartDate: time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
			IsActive:  false,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamID9A, Name: "9.A Wolves", ClassName: "9.A", Rating: 1520},
		{ID: TeamID9B, Name: "9.B Eagles", ClassName: "9.B", Rating: 1480},
		{ID: TeamID8A, Name: "8.A Foxes", ClassName: "8.A", Rating: 1390},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, TeamID: TeamID9A, FirstName: "Jakub", LastName: "Dvorak", BirthDate: time.Date(2011, 5, 2, 0, 0, 0, 0, time.UTC), Position: player.PositionGoalkeeper},
		{ID: 2, TeamID: TeamID9A, FirstName: "Tomas", LastName: "Maly", BirthDate: time.Date(2011, 9, 18, 0, 0, 0, 0, time.UTC), Position: player.PositionAttacker},
		{ID: 3, TeamID: TeamID9B, FirstName: "Petra", LastName: "Horakova", BirthDate: time.Date(2011, 1, 30, 0, 0, 0, 0, time.UTC), Position: player.PositionMidfielder},
	}
}

func SeedReferees() []referee.Referee {
	return []referee.Referee{
		{ID: RefereeIDNovak, FullName: "Jan Novak", Email: "jan.novak@school.example", Level: referee.LevelTeacher, Active: true},
		{ID: RefereeIDSvoboda, FullName: "Eva Svobodova", Email: "eva.svobodova@school.example", Level: referee.LevelStudent, Active: true},
		{ID: RefereeIDExternal, FullName: "Karel Zeman", Email: "karel.zeman@referees.example", Level: referee.LevelExternal, Active: false},
	}
}
