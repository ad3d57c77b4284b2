package fixtures

import (
	"fmt"
	"log"

	"matchpoint-api/models"
	"matchpoint-api/services"

	"gorm.io/gorm"
)

type Fixtures struct {
	db           *gorm.DB
	matchService *services.MatchService
	scoreService *services.ScoreService
}

func NewFixtures(db *gorm.DB) *Fixtures {
	playerService := services.NewPlayerService(db)
	return &Fixtures{
		db:           db,
		matchService: services.NewMatchService(db, playerService),
		scoreService: services.NewScoreService(db),
	}
}

type demoMatch struct {
	request   models.CreateMatchRequest
	sets      []models.SetScore // submitted as scores for both teams
	completed bool
}

// GenerateTestData creates demo matches through the domain services so the
// data goes through the same code paths as real requests: one finished
// match, one in progress and one still scheduled.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	demos := []demoMatch{
		{
			request: models.CreateMatchRequest{
				Title: "Sunday Finals",
				Date:  "2024-06-01",
				TeamA: models.TeamInput{Name: "Reds", Players: []string{"Alice", "Ben"}},
				TeamB: models.TeamInput{Name: "Blues", Players: []string{"Carla", "Dan"}},
			},
			sets:      []models.SetScore{{SetNumber: 1, TeamAGames: 6, TeamBGames: 4}, {SetNumber: 2, TeamAGames: 7, TeamBGames: 5}},
			completed: true,
		},
		{
			request: models.CreateMatchRequest{
				Title: "Evening Doubles",
				Date:  "2024-06-08",
				TeamA: models.TeamInput{Name: "Smashers", Players: []string{"Alice", "Carla"}},
				TeamB: models.TeamInput{Name: "Netters", Players: []string{"Ben", "Dan"}},
			},
			sets: []models.SetScore{{SetNumber: 1, TeamAGames: 3, TeamBGames: 6}},
		},
		{
			request: models.CreateMatchRequest{
				Title: "Next Week's Singles",
				Date:  "2024-06-15",
				TeamA: models.TeamInput{Name: "Alice", Players: []string{"Alice"}},
				TeamB: models.TeamInput{Name: "Dan", Players: []string{"Dan"}},
			},
		},
	}

	for _, demo := range demos {
		if err := f.generateMatch(demo); err != nil {
			return fmt.Errorf("failed to generate match %q: %w", demo.request.Title, err)
		}
	}

	log.Printf("Fixtures generated successfully! Created %d matches", len(demos))
	return nil
}

func (f *Fixtures) generateMatch(demo demoMatch) error {
	match, err := f.matchService.CreateMatch(demo.request)
	if err != nil {
		return err
	}

	detail, err := f.matchService.GetMatch(match.ID)
	if err != nil {
		return err
	}

	for _, set := range demo.sets {
		if _, err := f.scoreService.SubmitScore(models.SubmitScoreRequest{
			MatchID:   match.ID,
			TeamID:    detail.TeamA.ID,
			SetNumber: set.SetNumber,
			Games:     set.TeamAGames,
		}); err != nil {
			return err
		}
		if _, err := f.scoreService.SubmitScore(models.SubmitScoreRequest{
			MatchID:   match.ID,
			TeamID:    detail.TeamB.ID,
			SetNumber: set.SetNumber,
			Games:     set.TeamBGames,
		}); err != nil {
			return err
		}
	}

	if demo.completed {
		status := models.StatusCompleted
		if _, err := f.matchService.UpdateMatch(match.ID, models.UpdateMatchRequest{Status: &status}); err != nil {
			return err
		}
	}

	return nil
}

// Clean removes all demo data.
func (f *Fixtures) Clean() error {
	log.Println("Cleaning all data...")

	tables := []string{"scores", "team_players", "teams", "matches", "players"}
	for _, table := range tables {
		if err := f.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clean table %s: %w", table, err)
		}
	}

	log.Println("All data cleaned")
	return nil
}
