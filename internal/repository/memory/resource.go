package memory

import (
	"context"

	"github.com/sakif/wellverse/internal/memstore"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

type ResourceRepo struct {
	store *memstore.Store
}

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

func resourceToDoc(res *model.Resource) memstore.Document {
	return memstore.Document{
		"title":       res.Title,
		"description": res.Description,
		"topic":       res.Topic,
		"type":        res.Type,
		"contentUrl":  res.ContentURL,
		"icon":        res.Icon,
	}
}

func docToResource(d memstore.Document) model.Resource {
	return model.Resource{
		ID:          docString(d, "id"),
		Title:       docString(d, "title"),
		Description: docString(d, "description"),
		Topic:       docString(d, "topic"),
		Type:        docString(d, "type"),
		ContentURL:  docString(d, "contentUrl"),
		Icon:        docString(d, "icon"),
	}
}

// List applies the topic filter through the store's single-field query
// and the type filter here; the emulated backend has no compound filters.
func (r *ResourceRepo) List(ctx context.Context, filter repository.ResourceFilter) ([]model.Resource, error) {
	q := memstore.Query{Collection: colResources}
	if filter.Topic != "" {
		q.Field = "topic"
		q.Equals = filter.Topic
	}
	docs, err := r.store.Find(ctx, q)
	if err != nil {
		return nil, err
	}

	resources := make([]model.Resource, 0, len(docs))
	for _, d := range docs {
		res := docToResource(d)
		if filter.Type != "" && res.Type != filter.Type {
			continue
		}
		resources = append(resources, res)
	}
	return resources, nil
}

func (r *ResourceRepo) Upsert(ctx context.Context, resource *model.Resource) error {
	return r.store.Set(ctx, colResources, resource.ID, resourceToDoc(resource))
}
