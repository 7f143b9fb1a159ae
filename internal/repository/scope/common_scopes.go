package scope

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func OrderByIdAsc(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}})
}
