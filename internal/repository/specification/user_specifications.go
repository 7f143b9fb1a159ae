package specification

import "gorm.io/gorm"

type ByUserID struct {
	ID string
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(currentColumnEq("id", s.ID))
}

type ByLogin struct {
	Login string
}

func (s ByLogin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(currentColumnEq("login", s.Login))
}
