package model

type ChildEntity struct {
	Id         int64         `gorm:"primaryKey;autoIncrement"`
	ChildField *string       `gorm:"column:child_field;type:varchar(255)"`
	UserId     string        `gorm:"type:varchar(100);not null;index"`
	Owner      *User         `gorm:"foreignKey:UserId;references:Id"`
	ParentId   int64         `gorm:"not null;index"`
	Parent     *ParentEntity `gorm:"foreignKey:ParentId"`
}

func (ChildEntity) TableName() string {
	return "child_entities"
}
