package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
)

type matchSummaryRow struct {
	MatchID        int64          `db:"match_id"`
	TournamentName sql.NullString `db:"tournament_name"`
	HomeTeamName   sql.NullString `db:"home_team_name"`
	AwayTeamName   sql.NullString `db:"away_team_name"`
	StartTime      time.Time      `db:"start_time"`
	Status         string         `db:"status"`
	IsOvertime     bool           `db:"is_overtime"`
}

func (r matchSummaryRow) toDomain() match.Summary {
	return match.Summary{
		MatchID:        r.MatchID,
		TournamentName: nullStringPtr(r.TournamentName),
		HomeTeamName:   nullStringPtr(r.HomeTeamName),
		AwayTeamName:   nullStringPtr(r.AwayTeamName),
		StartTime:      r.StartTime,
		Status:         match.Status(r.Status),
		IsOvertime:     r.IsOvertime,
	}
}
