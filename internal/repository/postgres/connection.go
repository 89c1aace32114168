package postgres

import (
	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/boudmarinus-tech/ene-chille-app/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Player{},
		&domain.Match{},
		&domain.MotmBallot{},
		&domain.DonkeyBallot{},
		&domain.PlayerStat{},
		&domain.AttendanceRecord{},
		&domain.Fixture{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Roster:       NewRosterRepository(db),
		Match:        NewMatchRepository(db),
		MotmBallot:   NewMotmBallotRepository(db),
		DonkeyBallot: NewDonkeyBallotRepository(db),
		PlayerStat:   NewPlayerStatRepository(db),
		Attendance:   NewAttendanceRepository(db),
		Fixture:      NewFixtureRepository(db),
	}
}
