// FILE: internal/repository/contract/school_repository.go
package contract

import (
	"context"

	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/repository/specification"
)

type SchoolRepository interface {
	Create(ctx context.Context, school *entity.School) error
	Update(ctx context.Context, school *entity.School) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.School, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.School, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*entity.School, error)
}
