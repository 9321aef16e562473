package service

import (
	"context"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

// ResourceService serves the wellness resource library.
type ResourceService struct {
	resources repository.ResourceRepository
}

func NewResourceService(resources repository.ResourceRepository) *ResourceService {
	return &ResourceService{resources: resources}
}

// List returns resources matching the filters. Empty filters match
// everything.
func (s *ResourceService) List(ctx context.Context, topic, resourceType string) ([]model.Resource, error) {
	switch resourceType {
	case "", model.ResourceArticle, model.ResourceVideo, model.ResourceExercise:
	default:
		return nil, apperror.ValidationFailed("type", "must be Article, Video or Exercise")
	}

	return s.resources.List(ctx, repository.ResourceFilter{Topic: topic, Type: resourceType})
}
