package unitofwork

import (
	"context"

	"sample-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ParentEntityRepository() contract.ParentEntityRepository
	ChildEntityRepository() contract.ChildEntityRepository
	UserRepository() contract.UserRepository
}
