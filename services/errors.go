package services

import "errors"

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrMatchCompleted = errors.New("match already completed")
)
