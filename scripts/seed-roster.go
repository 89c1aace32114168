package main

import (
	"fmt"
	"os"
	"time"

	"github.com/boudmarinus-tech/ene-chille-app/internal/config"
	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/boudmarinus-tech/ene-chille-app/internal/repository/postgres"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// The roster and the fixture agenda have no write endpoints; they are
// managed out of band. This script seeds both into the database.

var rosterNames = []string{
	"Boud", "Marinus", "Seppe", "Wout", "Jari",
	"Lander", "Milan", "Senne", "Thibo", "Vince",
}

type fixtureSeed struct {
	daysAhead int
	hour      int
	home      string
	away      string
	venue     string
}

var fixtureSeeds = []fixtureSeed{
	{7, 20, "Ene Chille", "Cafe Sport", "Sporthal De Linde"},
	{14, 21, "ZVC De Toekomst", "Ene Chille", "Sporthal Ter Eiken"},
	{21, 20, "Ene Chille", "FC De Kroon", "Sporthal De Linde"},
	{28, 19, "Zaalvoetbal Titanen", "Ene Chille", "Sportcomplex Noord"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeding %d roster players...\n", len(rosterNames))
	for _, name := range rosterNames {
		player := domain.Player{ID: uuid.New(), Name: name}
		// Names already present keep their existing row and ID.
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&player).Error
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed player %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ %s\n", name)
	}

	fmt.Printf("\nSeeding %d fixtures...\n", len(fixtureSeeds))
	now := time.Now()
	for _, f := range fixtureSeeds {
		day := now.AddDate(0, 0, f.daysAhead)
		fixture := domain.Fixture{
			ID:       uuid.New(),
			StartsAt: time.Date(day.Year(), day.Month(), day.Day(), f.hour, 0, 0, 0, time.Local),
			HomeTeam: f.home,
			AwayTeam: f.away,
			Venue:    f.venue,
		}
		if err := db.Create(&fixture).Error; err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed fixture %s - %s: %v\n", f.home, f.away, err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ %s - %s (%s)\n", f.home, f.away, fixture.StartsAt.Format("Mon 2 Jan 15:04"))
	}

	fmt.Println("\nDone.")
}
