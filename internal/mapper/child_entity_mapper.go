package mapper

import (
	"sample-be/internal/entity"
	"sample-be/internal/model"
)

type ChildEntityMapper struct{}

func NewChildEntityMapper() *ChildEntityMapper {
	return &ChildEntityMapper{}
}

// ToEntity maps a row to the aggregate. When the parent or owner were not joined,
// reference stubs carrying only the id are used.
func (m *ChildEntityMapper) ToEntity(c *model.ChildEntity) *entity.ChildEntity {
	if c == nil {
		return nil
	}
	child := m.toEntityWithoutParent(c)

	var parent *entity.ParentEntity
	if c.Parent != nil {
		id := c.Parent.Id
		requiredField := c.Parent.RequiredField
		parent = &entity.ParentEntity{Id: &id, RequiredField: &requiredField}
	} else {
		id := c.ParentId
		parent = &entity.ParentEntity{Id: &id}
	}
	entity.LinkChild(parent, child)
	return child
}

func (m *ChildEntityMapper) toEntityWithoutParent(c *model.ChildEntity) *entity.ChildEntity {
	id := c.Id
	child := &entity.ChildEntity{
		Id:         &id,
		ChildField: c.ChildField,
	}
	if c.Owner != nil {
		child.Owner = NewUserMapper().ToEntity(c.Owner)
	} else if c.UserId != "" {
		child.Owner = &entity.User{Id: c.UserId}
	}
	return child
}

func (m *ChildEntityMapper) ToModel(c *entity.ChildEntity) *model.ChildEntity {
	if c == nil {
		return nil
	}
	out := &model.ChildEntity{
		ChildField: c.ChildField,
	}
	if c.Id != nil {
		out.Id = *c.Id
	}
	if c.Owner != nil {
		out.UserId = c.Owner.Id
	}
	if parent := c.Parent(); parent != nil && parent.Id != nil {
		out.ParentId = *parent.Id
	}
	return out
}

func (m *ChildEntityMapper) ToEntities(children []*model.ChildEntity) []*entity.ChildEntity {
	entities := make([]*entity.ChildEntity, len(children))
	for i, c := range children {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
