package scope

import "gorm.io/gorm"

// JoinOwnerAndParent loads both to-one relationships of a child in the same
// query (LEFT JOIN). To-one joins do not multiply rows.
func JoinOwnerAndParent(db *gorm.DB) *gorm.DB {
	return db.Joins("Owner").Joins("Parent")
}

// PreloadChildren loads a parent's children ordered by id.
func PreloadChildren(db *gorm.DB) *gorm.DB {
	return db.Preload("Children", OrderByIdAsc)
}
