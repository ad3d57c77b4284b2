package services

import (
	"errors"

	"matchpoint-api/models"

	"gorm.io/gorm"
)

type ScoreService struct {
	db *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{
		db: db,
	}
}

// SubmitScore upserts the score row keyed on (match, team, set): a second
// submission for the same set updates games instead of inserting a second
// row. The first score against a scheduled match moves it into play.
func (s *ScoreService) SubmitScore(req models.SubmitScoreRequest) (*models.Score, error) {
	var score models.Score

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var match models.Match
		if err := tx.First(&match, req.MatchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMatchNotFound
			}
			return err
		}

		err := tx.Where("match_id = ? AND team_id = ? AND set_number = ?",
			req.MatchID, req.TeamID, req.SetNumber).First(&score).Error
		switch {
		case err == nil:
			score.Games = req.Games
			if err := tx.Save(&score).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			score = models.Score{
				MatchID:   req.MatchID,
				TeamID:    req.TeamID,
				SetNumber: req.SetNumber,
				Games:     req.Games,
			}
			if err := tx.Create(&score).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if match.Status == models.StatusScheduled {
			if err := tx.Model(&match).Update("status", models.StatusInProgress).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &score, nil
}

func (s *ScoreService) GetScoresByMatchID(matchID uint) ([]models.Score, error) {
	var scores []models.Score

	result := s.db.
		Where("match_id = ?", matchID).
		Order("set_number ASC").
		Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}

	return scores, nil
}
