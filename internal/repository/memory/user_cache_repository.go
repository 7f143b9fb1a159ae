package memory

import (
	"time"

	"sample-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// UserCacheRepository keeps identity lookups for a short time so the remote
// identity service is not called on every child mutation.
type UserCacheRepository struct {
	cache *cache.Cache
}

func NewUserCacheRepository(ttl time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *UserCacheRepository) Save(user *entity.User) {
	if user == nil || user.Id == "" {
		return
	}
	copied := *user
	r.cache.Set(user.Id, &copied, cache.DefaultExpiration)
}

func (r *UserCacheRepository) Get(id string) (*entity.User, bool) {
	if x, found := r.cache.Get(id); found {
		copied := *x.(*entity.User)
		return &copied, true
	}
	return nil, false
}

func (r *UserCacheRepository) Delete(id string) {
	r.cache.Delete(id)
}
