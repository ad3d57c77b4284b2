package models

import (
	"time"
)

type Score struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID   uint      `gorm:"not null;constraint:OnDelete:CASCADE;uniqueIndex:idx_scores_match_team_set" json:"match_id"`
	TeamID    uint      `gorm:"not null;constraint:OnDelete:CASCADE;uniqueIndex:idx_scores_match_team_set" json:"team_id"`
	SetNumber int       `gorm:"not null;uniqueIndex:idx_scores_match_team_set" json:"set_number"`
	Games     int       `gorm:"not null;default:0" json:"games"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Match Match `gorm:"foreignKey:MatchID;references:ID" json:"match,omitempty"`
	Team  Team  `gorm:"foreignKey:TeamID;references:ID" json:"team,omitempty"`
}

func (Score) TableName() string {
	return "scores"
}

type SubmitScoreRequest struct {
	MatchID   uint `json:"match_id" binding:"required"`
	TeamID    uint `json:"team_id" binding:"required"`
	SetNumber int  `json:"set_number" binding:"required,min=1"`
	Games     int  `json:"games" binding:"gte=0"`
}
