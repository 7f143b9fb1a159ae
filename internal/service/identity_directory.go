package service

import (
	"context"
	"errors"

	"sample-be/internal/client"
	"sample-be/internal/entity"
	"sample-be/internal/pkg/logger"
	"sample-be/internal/repository/memory"
	"sample-be/internal/repository/specification"
	"sample-be/internal/repository/unitofwork"
)

// IIdentityDirectory resolves owner references. FindUser returns (nil, nil)
// for an unknown id.
type IIdentityDirectory interface {
	FindUser(ctx context.Context, id string) (*entity.User, error)
}

type localIdentityDirectory struct {
	uowFactory unitofwork.RepositoryFactory
}

// NewLocalIdentityDirectory reads users from the local users table.
func NewLocalIdentityDirectory(uowFactory unitofwork.RepositoryFactory) IIdentityDirectory {
	return &localIdentityDirectory{uowFactory: uowFactory}
}

func (d *localIdentityDirectory) FindUser(ctx context.Context, id string) (*entity.User, error) {
	uow := d.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindOne(ctx, specification.ByUserID{ID: id})
}

type remoteIdentityDirectory struct {
	client *client.IdentityClient
	cache  *memory.UserCacheRepository
	logger logger.ILogger
}

// NewRemoteIdentityDirectory asks the identity service, relaying the caller's
// token, and caches hits.
func NewRemoteIdentityDirectory(client *client.IdentityClient, cache *memory.UserCacheRepository, logger logger.ILogger) IIdentityDirectory {
	return &remoteIdentityDirectory{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

func (d *remoteIdentityDirectory) FindUser(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := d.cache.Get(id); ok {
		return user, nil
	}

	user, err := d.client.GetUser(ctx, id)
	if errors.Is(err, client.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		d.logger.Error("IdentityDirectory", "Identity lookup failed", map[string]interface{}{"user_id": id, "error": err})
		return nil, err
	}

	d.cache.Save(user)
	return user, nil
}
