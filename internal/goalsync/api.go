package goalsync

import (
	"context"

	"github.com/theirongolddev/fitdash/internal/userapi"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=goalsync_test

// UserAPI is the part of the backend the goal service talks to.
type UserAPI interface {
	GetUser(ctx context.Context, userID string) (*userapi.User, error)
	UpdateCalorieGoal(ctx context.Context, userID string, goal int) error
}
