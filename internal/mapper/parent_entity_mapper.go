package mapper

import (
	"sample-be/internal/entity"
	"sample-be/internal/model"
)

type ParentEntityMapper struct{}

func NewParentEntityMapper() *ParentEntityMapper {
	return &ParentEntityMapper{}
}

// ToEntity maps a row to the aggregate. Children are linked only when they were
// loaded with the row.
func (m *ParentEntityMapper) ToEntity(p *model.ParentEntity) *entity.ParentEntity {
	if p == nil {
		return nil
	}
	id := p.Id
	requiredField := p.RequiredField
	parent := &entity.ParentEntity{
		Id:            &id,
		RequiredField: &requiredField,
	}

	childMapper := NewChildEntityMapper()
	for i := range p.Children {
		child := childMapper.toEntityWithoutParent(&p.Children[i])
		entity.LinkChild(parent, child)
	}
	return parent
}

func (m *ParentEntityMapper) ToModel(p *entity.ParentEntity) *model.ParentEntity {
	if p == nil {
		return nil
	}
	out := &model.ParentEntity{}
	if p.Id != nil {
		out.Id = *p.Id
	}
	if p.RequiredField != nil {
		out.RequiredField = *p.RequiredField
	}
	return out
}

func (m *ParentEntityMapper) ToEntities(parents []*model.ParentEntity) []*entity.ParentEntity {
	entities := make([]*entity.ParentEntity, len(parents))
	for i, p := range parents {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
