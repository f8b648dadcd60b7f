package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bamsemats/moonadmin/internal/common"
	"github.com/bamsemats/moonadmin/internal/models"
	"github.com/bamsemats/moonadmin/internal/repositories/missions"
)

// nowFn is a test seam for the current-year upper bound.
var nowFn = time.Now

// MissionService exposes the read-only mission queries.
type MissionService struct {
	missions missions.Repository
}

func NewMissionService(r missions.Repository) *MissionService {
	return &MissionService{missions: r}
}

// ListMissions returns all spacecraft names, lexicographically ascending.
// An empty mission table yields an empty slice.
func (s *MissionService) ListMissions(ctx context.Context) ([]string, error) {
	names, err := s.missions.ListSpacecraft(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list moon missions: %w", err)
	}
	return names, nil
}

// GetMissionByID looks a mission up by id. A missing row surfaces as
// common.ErrorNotFound so the caller can render a not-found message instead
// of failing.
func (s *MissionService) GetMissionByID(ctx context.Context, missionID int64) (*models.MoonMission, error) {
	mission, err := s.missions.GetByID(ctx, missionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get moon mission: %w", err)
	}
	return mission, nil
}

// CountMissionsByYear counts missions launched within the given calendar
// year. Years outside [1, current year] are rejected with
// common.ErrYearOutOfRange before any query is issued.
func (s *MissionService) CountMissionsByYear(ctx context.Context, year int) (int64, error) {
	if year < 1 || year > nowFn().Year() {
		return 0, common.ErrYearOutOfRange
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	count, err := s.missions.CountByLaunchRange(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to count moon missions: %w", err)
	}
	return count, nil
}
