package services

import (
	"errors"

	"matchpoint-api/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

// FindOrCreateInTransaction looks a player up by exact name match before
// creating a new record, so the same name never yields two players.
func (s *PlayerService) FindOrCreateInTransaction(tx *gorm.DB, name string) (*models.Player, error) {
	var player models.Player

	err := tx.Where("name = ?", name).First(&player).Error
	if err == nil {
		return &player, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	player = models.Player{Name: name}
	if err := tx.Create(&player).Error; err != nil {
		return nil, err
	}

	return &player, nil
}

func (s *PlayerService) GetPlayersByTeamID(teamID uint) ([]models.Player, error) {
	var players []models.Player

	result := s.db.
		Joins("JOIN team_players ON team_players.player_id = players.id").
		Where("team_players.team_id = ?", teamID).
		Order("players.id ASC").
		Find(&players)

	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (s *PlayerService) GetAllPlayers() ([]models.Player, error) {
	var players []models.Player

	result := s.db.Order("name ASC").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}
