package missions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bamsemats/moonadmin/internal/common"
	"github.com/bamsemats/moonadmin/internal/dbx"
	"github.com/bamsemats/moonadmin/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListSpacecraft returns all spacecraft names in lexicographic order.
// An empty table yields an empty slice, not an error.
func (r *PostgresRepository) ListSpacecraft(ctx context.Context) ([]string, error) {

	query :=
		`SELECT spacecraft FROM moon_mission
		 ORDER BY spacecraft
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return names, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, missionID int64) (*models.MoonMission, error) {

	query :=
		`SELECT mission_id, spacecraft, launch_date FROM moon_mission
		 WHERE mission_id = $1
		 `

	mission := &models.MoonMission{}
	err := r.db.QueryRowContext(ctx, query, missionID).
		Scan(&mission.MissionID, &mission.Spacecraft, &mission.LaunchDate)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return mission, nil
}

// CountByLaunchRange counts missions with from <= launch_date < to. The
// caller supplies the half-open interval so the SQL stays parameterized and
// engine-neutral.
func (r *PostgresRepository) CountByLaunchRange(ctx context.Context, from, to time.Time) (int64, error) {

	query :=
		`SELECT COUNT(*) FROM moon_mission
		 WHERE launch_date >= $1 AND launch_date < $2
		 `

	var count int64
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}
