package model

// User mirrors the identity subsystem's user so child rows can reference it.
// Login uniqueness belongs to the identity subsystem, the mirror only indexes it.
type User struct {
	Id    string `gorm:"type:varchar(100);primaryKey"`
	Login string `gorm:"type:varchar(100);index;not null"`
}

func (User) TableName() string {
	return "users"
}
