package specification

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ByID filters by primary key. The column is qualified with the model's table
// so the filter stays unambiguous under joins.
type ByID struct {
	ID int64
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(currentColumnEq("id", s.ID))
}

// ByIDs filters by a list of IDs
type ByIDs struct {
	IDs []int64
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	values := make([]interface{}, len(s.IDs))
	for i, id := range s.IDs {
		values[i] = id
	}
	return db.Where(clause.IN{Column: currentColumn("id"), Values: values})
}

// OrderBy applies ordering. Field must be a column name, never raw client input.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: currentColumn(s.Field), Desc: s.Desc})
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

func currentColumn(name string) clause.Column {
	return clause.Column{Table: clause.CurrentTable, Name: name}
}

func currentColumnEq(name string, value interface{}) clause.Eq {
	return clause.Eq{Column: currentColumn(name), Value: value}
}
