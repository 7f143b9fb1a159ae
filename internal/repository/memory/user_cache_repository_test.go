package memory

import (
	"testing"
	"time"

	"sample-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCacheRepository(t *testing.T) {
	repo := NewUserCacheRepository(time.Minute)

	_, found := repo.Get("user-1")
	assert.False(t, found)

	user := &entity.User{Id: "user-1", Login: "alice"}
	repo.Save(user)
	user.Login = "mutated"

	got, found := repo.Get("user-1")
	require.True(t, found)
	assert.Equal(t, "alice", got.Login)

	repo.Delete("user-1")
	_, found = repo.Get("user-1")
	assert.False(t, found)
}

func TestUserCacheRepository_Expiry(t *testing.T) {
	repo := NewUserCacheRepository(20 * time.Millisecond)
	repo.Save(&entity.User{Id: "user-1"})

	time.Sleep(50 * time.Millisecond)

	_, found := repo.Get("user-1")
	assert.False(t, found)
}

func TestUserCacheRepository_IgnoresEmptyId(t *testing.T) {
	repo := NewUserCacheRepository(time.Minute)
	repo.Save(&entity.User{})
	repo.Save(nil)

	_, found := repo.Get("")
	assert.False(t, found)
}
