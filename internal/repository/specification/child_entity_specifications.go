package specification

import "gorm.io/gorm"

type ByParentID struct {
	ParentID int64
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(currentColumnEq("parent_id", s.ParentID))
}

type ByOwnerID struct {
	OwnerID string
}

func (s ByOwnerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(currentColumnEq("user_id", s.OwnerID))
}
