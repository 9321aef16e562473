package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

var _ repository.CommunityRepository = (*CommunityDB)(nil)

// CommunityDB implements repository.CommunityRepository on the
// communities table.
type CommunityDB struct {
	conn *sql.DB
}

const communityColumns = `id, name, description, icon`

func (db *CommunityDB) List(ctx context.Context) ([]model.Community, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+communityColumns+` FROM communities ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing communities: %w", err)
	}
	defer rows.Close()

	communities := []model.Community{}
	for rows.Next() {
		var c model.Community
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon); err != nil {
			return nil, fmt.Errorf("sqlite: scanning community: %w", err)
		}
		communities = append(communities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating communities: %w", err)
	}
	return communities, nil
}

func (db *CommunityDB) GetByID(ctx context.Context, id string) (*model.Community, error) {
	var c model.Community
	err := db.conn.QueryRowContext(ctx,
		`SELECT `+communityColumns+` FROM communities WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Icon)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("community", id)
		}
		return nil, fmt.Errorf("sqlite: getting community %s: %w", id, err)
	}
	return &c, nil
}

func (db *CommunityDB) Upsert(ctx context.Context, community *model.Community) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO communities (`+communityColumns+`)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			icon = excluded.icon`,
		community.ID,
		community.Name,
		community.Description,
		community.Icon,
	)
	if err != nil {
		return fmt.Errorf("sqlite: upserting community %s: %w", community.ID, err)
	}
	return nil
}
