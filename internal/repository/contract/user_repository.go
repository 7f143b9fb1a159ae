package contract

import (
	"context"

	"sample-be/internal/entity"
	"sample-be/internal/repository/specification"
)

type UserRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	// Upsert inserts the user or refreshes its login.
	Upsert(ctx context.Context, user *entity.User) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
