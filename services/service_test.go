package services

import (
	"fmt"
	"testing"

	"matchpoint-api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory sqlite database with the full
// schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Match{},
		&models.Team{},
		&models.Player{},
		&models.TeamPlayer{},
		&models.Score{},
	)
	require.NoError(t, err)

	return db
}

func newTestServices(t *testing.T) (*MatchService, *ScoreService, *PlayerService) {
	t.Helper()

	db := setupTestDB(t)
	playerService := NewPlayerService(db)
	return NewMatchService(db, playerService), NewScoreService(db), playerService
}

func createMatchRequest(title string) models.CreateMatchRequest {
	return models.CreateMatchRequest{
		Title: title,
		Date:  "2024-06-01",
		TeamA: models.TeamInput{Name: "Reds", Players: []string{"A", "B"}},
		TeamB: models.TeamInput{Name: "Blues", Players: []string{"C", "D"}},
	}
}
