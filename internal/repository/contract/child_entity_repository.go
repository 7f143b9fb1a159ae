package contract

import (
	"context"

	"sample-be/internal/entity"
	"sample-be/internal/repository/specification"
)

type ChildEntityRepository interface {
	Create(ctx context.Context, child *entity.ChildEntity) error
	Update(ctx context.Context, child *entity.ChildEntity) error
	Delete(ctx context.Context, id int64) error
	ExistsById(ctx context.Context, id int64) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChildEntity, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChildEntity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Relationship-aware reads: owner and parent are joined in the same query.
	FindOneWithRelationships(ctx context.Context, id int64) (*entity.ChildEntity, error)
	FindAllWithRelationships(ctx context.Context, specs ...specification.Specification) ([]*entity.ChildEntity, error)
}
