package models

import (
	"time"
)

// Team sides within a match
const (
	SideTeamA = "team_a"
	SideTeamB = "team_b"
)

type Team struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	MatchID   uint      `gorm:"not null;constraint:OnDelete:CASCADE;uniqueIndex:idx_teams_match_side" json:"match_id"`
	Side      string    `gorm:"size:10;not null;uniqueIndex:idx_teams_match_side" json:"side"` // team_a, team_b
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Match   Match        `gorm:"foreignKey:MatchID;references:ID" json:"match,omitempty"`
	Players []TeamPlayer `gorm:"foreignKey:TeamID" json:"players,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

type TeamPlayer struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID   uint `gorm:"not null;constraint:OnDelete:CASCADE" json:"team_id"`
	PlayerID uint `gorm:"not null;constraint:OnDelete:CASCADE" json:"player_id"`

	// Relationships
	Team   Team   `gorm:"foreignKey:TeamID;references:ID" json:"team,omitempty"`
	Player Player `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
}

func (TeamPlayer) TableName() string {
	return "team_players"
}
