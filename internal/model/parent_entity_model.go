package model

type ParentEntity struct {
	Id            int64         `gorm:"primaryKey;autoIncrement"`
	RequiredField string        `gorm:"column:required_field;type:varchar(255);not null"`
	Children      []ChildEntity `gorm:"foreignKey:ParentId;constraint:OnDelete:RESTRICT"`
}

func (ParentEntity) TableName() string {
	return "parent_entities"
}
