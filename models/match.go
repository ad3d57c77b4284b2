package models

import (
	"time"
)

// Match statuses
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Match struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Date      string    `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Status    string    `gorm:"size:20;not null;default:scheduled" json:"status"` // scheduled, in_progress, completed
	WinnerID  *uint     `json:"winner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Teams  []Team  `gorm:"foreignKey:MatchID" json:"teams,omitempty"`
	Scores []Score `gorm:"foreignKey:MatchID" json:"scores,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// SetScore is one set's game counts for both sides, ordered by SetNumber in
// every response that carries it.
type SetScore struct {
	SetNumber  int `json:"setNumber"`
	TeamAGames int `json:"teamAGames"`
	TeamBGames int `json:"teamBGames"`
}

// DTOs

type TeamInput struct {
	Name    string   `json:"name" binding:"required"`
	Players []string `json:"players"`
}

type CreateMatchRequest struct {
	Title string    `json:"title" binding:"required"`
	Date  string    `json:"date" binding:"required"`
	TeamA TeamInput `json:"teamA" binding:"required"`
	TeamB TeamInput `json:"teamB" binding:"required"`
}

type CreateMatchResponse struct {
	ID uint `json:"id"`
}

type UpdateMatchRequest struct {
	Status   *string `json:"status,omitempty" binding:"omitempty,oneof=scheduled in_progress completed"`
	WinnerID *uint   `json:"winner_id,omitempty"`
}

// Responses

type TeamSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TeamDetail struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

type MatchSummary struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Date      string       `json:"date"`
	Status    string       `json:"status"`
	WinnerID  *uint        `json:"winner_id"`
	CreatedAt time.Time    `json:"created_at"`
	TeamA     *TeamSummary `json:"teamA"`
	TeamB     *TeamSummary `json:"teamB"`
	Sets      []SetScore   `json:"sets"`
}

type MatchDetail struct {
	ID        uint        `json:"id"`
	Title     string      `json:"title"`
	Date      string      `json:"date"`
	Status    string      `json:"status"`
	WinnerID  *uint       `json:"winner_id"`
	CreatedAt time.Time   `json:"created_at"`
	TeamA     *TeamDetail `json:"teamA"`
	TeamB     *TeamDetail `json:"teamB"`
	Sets      []SetScore  `json:"sets"`
}
