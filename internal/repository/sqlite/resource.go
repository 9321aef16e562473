package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

var _ repository.ResourceRepository = (*ResourceDB)(nil)

// ResourceDB implements repository.ResourceRepository on the resources
// table.
type ResourceDB struct {
	conn *sql.DB
}

const resourceColumns = `id, title, description, topic, type, content_url, icon`

func (db *ResourceDB) List(ctx context.Context, filter repository.ResourceFilter) ([]model.Resource, error) {
	// Empty filter fields match everything.
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+resourceColumns+` FROM resources
		 WHERE (? = '' OR topic = ?) AND (? = '' OR type = ?)
		 ORDER BY title`,
		filter.Topic, filter.Topic, filter.Type, filter.Type,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing resources: %w", err)
	}
	defer rows.Close()

	resources := []model.Resource{}
	for rows.Next() {
		var r model.Resource
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Topic, &r.Type, &r.ContentURL, &r.Icon); err != nil {
			return nil, fmt.Errorf("sqlite: scanning resource: %w", err)
		}
		resources = append(resources, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating resources: %w", err)
	}
	return resources, nil
}

func (db *ResourceDB) Upsert(ctx context.Context, resource *model.Resource) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO resources (`+resourceColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			topic = excluded.topic,
			type = excluded.type,
			content_url = excluded.content_url,
			icon = excluded.icon`,
		resource.ID,
		resource.Title,
		resource.Description,
		resource.Topic,
		resource.Type,
		resource.ContentURL,
		resource.Icon,
	)
	if err != nil {
		return fmt.Errorf("sqlite: upserting resource %s: %w", resource.ID, err)
	}
	return nil
}
