package services

import (
	"errors"
	"strings"

	"matchpoint-api/models"
	"matchpoint-api/utils"

	"gorm.io/gorm"
)

type MatchService struct {
	db            *gorm.DB
	playerService *PlayerService
}

func NewMatchService(db *gorm.DB, playerService *PlayerService) *MatchService {
	return &MatchService{
		db:            db,
		playerService: playerService,
	}
}

// CreateMatch creates the match, both teams and the rosters in a single
// transaction: either the match exists with both teams or nothing does.
// Individual player lookups or links that fail are skipped rather than
// aborting the match, so a partial roster is possible.
func (s *MatchService) CreateMatch(req models.CreateMatchRequest) (*models.Match, error) {
	match := models.Match{
		Title:  req.Title,
		Date:   req.Date,
		Status: models.StatusScheduled,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&match).Error; err != nil {
			return err
		}

		teamA := models.Team{Name: req.TeamA.Name, MatchID: match.ID, Side: models.SideTeamA}
		if err := tx.Create(&teamA).Error; err != nil {
			return err
		}

		teamB := models.Team{Name: req.TeamB.Name, MatchID: match.ID, Side: models.SideTeamB}
		if err := tx.Create(&teamB).Error; err != nil {
			return err
		}

		s.linkRosterInTransaction(tx, teamA.ID, req.TeamA.Players)
		s.linkRosterInTransaction(tx, teamB.ID, req.TeamB.Players)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &match, nil
}

// linkRosterInTransaction attaches the named players to a team. Blank names
// are dropped, names are trimmed and deduplicated against existing players
// by exact match. Failures on a single player are swallowed.
func (s *MatchService) linkRosterInTransaction(tx *gorm.DB, teamID uint, names []string) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		player, err := s.playerService.FindOrCreateInTransaction(tx, name)
		if err != nil {
			continue
		}

		link := models.TeamPlayer{TeamID: teamID, PlayerID: player.ID}
		if err := tx.Create(&link).Error; err != nil {
			continue
		}
	}
}

func (s *MatchService) GetMatch(matchID uint) (*models.MatchDetail, error) {
	var match models.Match

	result := s.db.Preload("Teams").Preload("Scores").First(&match, matchID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, result.Error
	}

	teamA, teamB := splitSides(match.Teams)

	detail := models.MatchDetail{
		ID:        match.ID,
		Title:     match.Title,
		Date:      match.Date,
		Status:    match.Status,
		WinnerID:  match.WinnerID,
		CreatedAt: match.CreatedAt,
		Sets:      []models.SetScore{},
	}

	var teamAID, teamBID uint
	if teamA != nil {
		players, err := s.playerService.GetPlayersByTeamID(teamA.ID)
		if err != nil {
			return nil, err
		}
		detail.TeamA = &models.TeamDetail{ID: teamA.ID, Name: teamA.Name, Players: players}
		teamAID = teamA.ID
	}
	if teamB != nil {
		players, err := s.playerService.GetPlayersByTeamID(teamB.ID)
		if err != nil {
			return nil, err
		}
		detail.TeamB = &models.TeamDetail{ID: teamB.ID, Name: teamB.Name, Players: players}
		teamBID = teamB.ID
	}

	detail.Sets = utils.AggregateSets(match.Scores, teamAID, teamBID)

	return &detail, nil
}

func (s *MatchService) ListMatches() ([]models.MatchSummary, error) {
	var matches []models.Match

	result := s.db.
		Preload("Teams").
		Preload("Scores").
		Order("created_at DESC").
		Find(&matches)
	if result.Error != nil {
		return nil, result.Error
	}

	summaries := make([]models.MatchSummary, 0, len(matches))
	for _, match := range matches {
		teamA, teamB := splitSides(match.Teams)

		summary := models.MatchSummary{
			ID:        match.ID,
			Title:     match.Title,
			Date:      match.Date,
			Status:    match.Status,
			WinnerID:  match.WinnerID,
			CreatedAt: match.CreatedAt,
			Sets:      []models.SetScore{},
		}

		var teamAID, teamBID uint
		if teamA != nil {
			summary.TeamA = &models.TeamSummary{ID: teamA.ID, Name: teamA.Name}
			teamAID = teamA.ID
		}
		if teamB != nil {
			summary.TeamB = &models.TeamSummary{ID: teamB.ID, Name: teamB.Name}
			teamBID = teamB.ID
		}

		summary.Sets = utils.AggregateSets(match.Scores, teamAID, teamBID)
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// UpdateMatch changes a match's status and winner. The caller's winner_id is
// stored as given; when the caller completes a match without supplying one,
// the winner is resolved from the stored sets. A drawn match stays without a
// winner. Completed matches reject further updates.
func (s *MatchService) UpdateMatch(matchID uint, req models.UpdateMatchRequest) (*models.Match, error) {
	var match models.Match

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&match, matchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMatchNotFound
			}
			return err
		}

		if match.Status == models.StatusCompleted {
			return ErrMatchCompleted
		}

		if req.Status == nil {
			return nil
		}

		match.Status = *req.Status

		if match.Status == models.StatusCompleted {
			if req.WinnerID != nil {
				match.WinnerID = req.WinnerID
			} else {
				winnerID, err := s.resolveWinnerInTransaction(tx, &match)
				if err != nil {
					return err
				}
				if winnerID != 0 {
					match.WinnerID = &winnerID
				}
			}
		}

		return tx.Save(&match).Error
	})
	if err != nil {
		return nil, err
	}

	return &match, nil
}

func (s *MatchService) resolveWinnerInTransaction(tx *gorm.DB, match *models.Match) (uint, error) {
	var teams []models.Team
	if err := tx.Where("match_id = ?", match.ID).Find(&teams).Error; err != nil {
		return 0, err
	}

	teamA, teamB := splitSides(teams)
	if teamA == nil || teamB == nil {
		return 0, nil
	}

	var scores []models.Score
	if err := tx.Where("match_id = ?", match.ID).Find(&scores).Error; err != nil {
		return 0, err
	}

	sets := utils.AggregateSets(scores, teamA.ID, teamB.ID)
	return utils.ResolveWinner(sets, teamA.ID, teamB.ID), nil
}

func splitSides(teams []models.Team) (teamA, teamB *models.Team) {
	for i := range teams {
		switch teams[i].Side {
		case models.SideTeamA:
			teamA = &teams[i]
		case models.SideTeamB:
			teamB = &teams[i]
		}
	}
	return teamA, teamB
}
