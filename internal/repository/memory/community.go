package memory

import (
	"context"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/memstore"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

type CommunityRepo struct {
	store *memstore.Store
}

var _ repository.CommunityRepository = (*CommunityRepo)(nil)

func communityToDoc(c *model.Community) memstore.Document {
	return memstore.Document{
		"name":        c.Name,
		"description": c.Description,
		"icon":        c.Icon,
	}
}

func docToCommunity(d memstore.Document) model.Community {
	return model.Community{
		ID:          docString(d, "id"),
		Name:        docString(d, "name"),
		Description: docString(d, "description"),
		Icon:        docString(d, "icon"),
	}
}

func (r *CommunityRepo) List(ctx context.Context) ([]model.Community, error) {
	docs, err := r.store.GetAll(ctx, colCommunities)
	if err != nil {
		return nil, err
	}
	communities := make([]model.Community, 0, len(docs))
	for _, d := range docs {
		communities = append(communities, docToCommunity(d))
	}
	return communities, nil
}

func (r *CommunityRepo) GetByID(ctx context.Context, id string) (*model.Community, error) {
	d, err := r.store.GetByID(ctx, colCommunities, id)
	if err != nil {
		return nil, apperror.NotFound("community", id)
	}
	c := docToCommunity(d)
	return &c, nil
}

func (r *CommunityRepo) Upsert(ctx context.Context, community *model.Community) error {
	return r.store.Set(ctx, colCommunities, community.ID, communityToDoc(community))
}
