package server

import (
	"context"

	"github.com/preston-bernstein/nba-draft-service/internal/sweeper"
)

// Sweeper defines the background cleanup behavior the server drives.
type Sweeper interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() sweeper.Status
	SweepOnce(ctx context.Context) (sweeper.Result, error)
}
