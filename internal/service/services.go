package service

import (
	"github.com/boudmarinus-tech/ene-chille-app/internal/config"
	"github.com/boudmarinus-tech/ene-chille-app/internal/repository"
	"github.com/boudmarinus-tech/ene-chille-app/internal/standings"
)

type Services struct {
	Match      *MatchService
	Vote       *VoteService
	Results    *ResultsService
	Attendance *AttendanceService
	Season     *SeasonService
	Standings  *StandingsService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Match:      NewMatchService(repos.Match, cfg),
		Vote:       NewVoteService(repos.Roster, repos.MotmBallot, repos.DonkeyBallot, repos.PlayerStat),
		Results:    NewResultsService(repos.Roster, repos.MotmBallot, repos.DonkeyBallot, repos.PlayerStat),
		Attendance: NewAttendanceService(repos.Roster, repos.Attendance),
		Season:     NewSeasonService(repos.Roster, repos.Match, repos.PlayerStat),
		Standings:  NewStandingsService(standings.NewClient(cfg.StandingsURL)),
	}
}
