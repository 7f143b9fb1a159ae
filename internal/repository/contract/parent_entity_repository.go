package contract

import (
	"context"

	"sample-be/internal/entity"
	"sample-be/internal/repository/specification"
)

type ParentEntityRepository interface {
	Create(ctx context.Context, parent *entity.ParentEntity) error
	Update(ctx context.Context, parent *entity.ParentEntity) error
	Delete(ctx context.Context, id int64) error
	ExistsById(ctx context.Context, id int64) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ParentEntity, error)
	// FindOneWithChildren loads the parent with its children linked.
	FindOneWithChildren(ctx context.Context, id int64) (*entity.ParentEntity, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ParentEntity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
