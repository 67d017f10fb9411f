// FILE: internal/repository/contract/feature_repository.go
// Repository interface for the global feature catalog
package contract

import (
	"context"

	"schoolhub-be/internal/repository/specification"
	"schoolhub-be/pkg/navigation"

	"github.com/google/uuid"
)

type FeatureRepository interface {
	Create(ctx context.Context, feature *navigation.Feature) error
	Update(ctx context.Context, feature *navigation.Feature) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*navigation.Feature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]navigation.Feature, error)
	FindByKey(ctx context.Context, key string) (*navigation.Feature, error)
}
