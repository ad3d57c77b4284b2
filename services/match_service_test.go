package services

import (
	"testing"
	"time"

	"matchpoint-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMatchStartsScheduledWithBothTeams(t *testing.T) {
	matchService, _, _ := newTestServices(t)

	match, err := matchService.CreateMatch(models.CreateMatchRequest{
		Title: "Finals",
		Date:  "2024-06-01",
		TeamA: models.TeamInput{Name: "Reds", Players: []string{"A", "B"}},
		TeamB: models.TeamInput{Name: "Blues", Players: []string{"C", "D"}},
	})
	require.NoError(t, err)
	require.NotZero(t, match.ID)

	detail, err := matchService.GetMatch(match.ID)
	require.NoError(t, err)

	assert.Equal(t, "Finals", detail.Title)
	assert.Equal(t, "2024-06-01", detail.Date)
	assert.Equal(t, models.StatusScheduled, detail.Status)
	assert.Nil(t, detail.WinnerID)

	require.NotNil(t, detail.TeamA)
	require.NotNil(t, detail.TeamB)
	assert.Equal(t, "Reds", detail.TeamA.Name)
	assert.Equal(t, "Blues", detail.TeamB.Name)
	assert.Len(t, detail.TeamA.Players, 2)
	assert.Len(t, detail.TeamB.Players, 2)
	assert.Empty(t, detail.Sets)
}

func TestCreateMatchDropsBlankPlayerNames(t *testing.T) {
	matchService, _, _ := newTestServices(t)

	match, err := matchService.CreateMatch(models.CreateMatchRequest{
		Title: "Casual",
		Date:  "2024-06-02",
		TeamA: models.TeamInput{Name: "Reds", Players: []string{"Alice", ""}},
		TeamB: models.TeamInput{Name: "Blues", Players: []string{"Bob"}},
	})
	require.NoError(t, err)

	detail, err := matchService.GetMatch(match.ID)
	require.NoError(t, err)

	require.Len(t, detail.TeamA.Players, 1)
	assert.Equal(t, "Alice", detail.TeamA.Players[0].Name)
}

func TestCreateMatchTrimsAndDeduplicatesPlayers(t *testing.T) {
	matchService, _, playerService := newTestServices(t)

	_, err := matchService.CreateMatch(models.CreateMatchRequest{
		Title: "First",
		Date:  "2024-06-01",
		TeamA: models.TeamInput{Name: "Reds", Players: []string{"  Alice  "}},
		TeamB: models.TeamInput{Name: "Blues", Players: []string{"Bob"}},
	})
	require.NoError(t, err)

	_, err = matchService.CreateMatch(models.CreateMatchRequest{
		Title: "Second",
		Date:  "2024-06-02",
		TeamA: models.TeamInput{Name: "Greens", Players: []string{"Alice"}},
		TeamB: models.TeamInput{Name: "Golds", Players: []string{"Cara"}},
	})
	require.NoError(t, err)

	players, err := playerService.GetAllPlayers()
	require.NoError(t, err)

	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Alice", "Bob", "Cara"}, names)
}

func TestGetMatchNotFound(t *testing.T) {
	matchService, _, _ := newTestServices(t)

	_, err := matchService.GetMatch(12345)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestListMatchesNewestFirst(t *testing.T) {
	matchService, _, _ := newTestServices(t)

	older, err := matchService.CreateMatch(createMatchRequest("Older"))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	newer, err := matchService.CreateMatch(createMatchRequest("Newer"))
	require.NoError(t, err)

	summaries, err := matchService.ListMatches()
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, newer.ID, summaries[0].ID)
	assert.Equal(t, older.ID, summaries[1].ID)
	require.NotNil(t, summaries[0].TeamA)
	assert.Equal(t, "Reds", summaries[0].TeamA.Name)
	assert.Empty(t, summaries[0].Sets)
}

func TestUpdateMatchStoresCallerWinner(t *testing.T) {
	matchService, _, _ := newTestServices(t)

	match, err := matchService.CreateMatch(createMatchRequest("Finals"))
	require.NoError(t, err)

	detail, err := matchService.GetMatch(match.ID)
	require.NoError(t, err)

	status := models.StatusCompleted
	updated, err := matchService.UpdateMatch(match.ID, models.UpdateMatchRequest{
		Status:   &status,
		WinnerID: &detail.TeamB.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	require.NotNil(t, updated.WinnerID)
	assert.Equal(t, detail.TeamB.ID, *updated.WinnerID)
}

func TestUpdateMatchResolvesWinnerFromSets(t *testing.T) {
	matchService, scoreService, _ := newTestServices(t)

	match, err := matchService.CreateMatch(createMatchRequest("Finals"))
	require.NoError(t, err)
	detail, err := matchService.GetMatch(match.ID)
	require.NoError(t, err)

	submissions := []models.SubmitScoreRequest{
		{MatchID: match.ID, TeamID: detail.TeamA.ID, SetNumber: 1, Games: 6},
		{MatchID: match.ID, TeamID: detail.TeamB.ID, SetNumber: 1, Games: 4},
		{MatchID: match.ID, TeamID: detail.TeamA.ID, SetNumber: 2, Games: 6},
		{MatchID: match.ID, TeamID: detail.TeamB.ID, SetNumber: 2, Games: 2},
	}
	for _, req := range submissions {
		_, err := scoreService.SubmitScore(req)
		require.NoError(t, err)
	}

	status := models.StatusCompleted
	updated, err := matchService.UpdateMatch(match.ID, models.UpdateMatchRequest{Status: &status})
	require.NoError(t, err)

	require.NotNil(t, updated.WinnerID)
	assert.Equal(t, detail.TeamA.ID, *updated.WinnerID)
}

func TestUpdateMatchDrawLeavesWinnerUnset(t *testing.T) {
	matchService, scoreService, _ := newTestServices(t)

	match, err := matchService.CreateMatch(createMatchRequest("Even"))
	require.NoError(t, err)
	detail, err := matchService.GetMatch(match.ID)
	require.NoError(t, err)

	submissions := []models.SubmitScoreRequest{
		{MatchID: match.ID, TeamID: detail.TeamA.ID, SetNumber: 1, Games: 6},
		{MatchID: match.ID, TeamID: detail.TeamB.ID, SetNumber: 1, Games: 3},
		{MatchID: match.ID, TeamID: detail.TeamA.ID, SetNumber: 2, Games: 2},
		{MatchID: match.ID, TeamID: detail.TeamB.ID, SetNumber: 2, Games: 6},
	}
	for _, req := range submissions {
		_, err := scoreService.SubmitScore(req)
		require.NoError(t, err)
	}

	status := models.StatusCompleted
	updated, err := matchService.UpdateMatch(match.ID, models.UpdateMatchRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Nil(t, updated.WinnerID)
}

func TestUpdateMatchRejectsCompletedMatch(t *testing.T) {
	matchService, _, _ := newTestServices(t)

	match, err := matchService.CreateMatch(createMatchRequest("Done"))
	require.NoError(t, err)

	status := models.StatusCompleted
	_, err = matchService.UpdateMatch(match.ID, models.UpdateMatchRequest{Status: &status})
	require.NoError(t, err)

	inProgress := models.StatusInProgress
	_, err = matchService.UpdateMatch(match.ID, models.UpdateMatchRequest{Status: &inProgress})
	assert.ErrorIs(t, err, ErrMatchCompleted)
}

func TestUpdateMatchNotFound(t *testing.T) {
	matchService, _, _ := newTestServices(t)

	status := models.StatusCompleted
	_, err := matchService.UpdateMatch(999, models.UpdateMatchRequest{Status: &status})
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
