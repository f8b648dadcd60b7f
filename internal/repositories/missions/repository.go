package missions

import (
	"context"
	"time"

	"github.com/bamsemats/moonadmin/internal/models"
)

// Repository is the read-only persistence contract for the moon_mission
// table. GetByID returns common.ErrorNotFound when no row matches.
type Repository interface {
	ListSpacecraft(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, missionID int64) (*models.MoonMission, error)
	CountByLaunchRange(ctx context.Context, from, to time.Time) (int64, error)
}
