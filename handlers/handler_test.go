package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"matchpoint-api/models"
	"matchpoint-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the handlers against an in-memory sqlite database, the
// same way main.go wires them against Postgres.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	playerService := services.NewPlayerService(db)
	matchService := services.NewMatchService(db, playerService)
	scoreService := services.NewScoreService(db)

	matchHandler := NewMatchHandler(matchService)
	scoreHandler := NewScoreHandler(scoreService)

	r := gin.New()
	matches := r.Group("/matches")
	{
		matches.GET("", matchHandler.GetMatches)
		matches.POST("", matchHandler.CreateMatch)
		matches.GET("/:id", matchHandler.GetMatch)
		matches.PATCH("/:id", matchHandler.UpdateMatch)
	}
	r.POST("/scores", scoreHandler.SubmitScore)

	return r
}

func matchPath(id uint) string {
	return fmt.Sprintf("/matches/%d", id)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createTestMatch(t *testing.T, r *gin.Engine, title string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/matches", models.CreateMatchRequest{
		Title: title,
		Date:  "2024-06-01",
		TeamA: models.TeamInput{Name: "Reds", Players: []string{"A", "B"}},
		TeamB: models.TeamInput{Name: "Blues", Players: []string{"C", "D"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decode[models.CreateMatchResponse](t, w)
	require.NotZero(t, created.ID)
	return created.ID
}
