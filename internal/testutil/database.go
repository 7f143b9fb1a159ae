// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"sample-be/internal/model"
	"sample-be/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a fresh in-memory sqlite database with the schema migrated.
// Every call returns an isolated database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewSqliteDB("file::memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// SeedUser inserts a user row directly.
func SeedUser(t testing.TB, db *gorm.DB, id, login string) {
	t.Helper()
	require.NoError(t, db.Create(&model.User{Id: id, Login: login}).Error)
}

// SeedParent inserts a parent row and returns its id.
func SeedParent(t testing.TB, db *gorm.DB, requiredField string) int64 {
	t.Helper()
	m := &model.ParentEntity{RequiredField: requiredField}
	require.NoError(t, db.Omit("Children").Create(m).Error)
	return m.Id
}

// SeedChild inserts a child row and returns its id.
func SeedChild(t testing.TB, db *gorm.DB, childField *string, userId string, parentId int64) int64 {
	t.Helper()
	m := &model.ChildEntity{ChildField: childField, UserId: userId, ParentId: parentId}
	require.NoError(t, db.Omit("Owner", "Parent").Create(m).Error)
	return m.Id
}
