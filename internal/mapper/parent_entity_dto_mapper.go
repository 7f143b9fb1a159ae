package mapper

import (
	"sample-be/internal/dto"
	"sample-be/internal/entity"
)

// ParentEntityDtoMapper projects ParentEntity to and from its wire form.
type ParentEntityDtoMapper struct{}

func NewParentEntityDtoMapper() *ParentEntityDtoMapper {
	return &ParentEntityDtoMapper{}
}

func (m *ParentEntityDtoMapper) ToDto(p *entity.ParentEntity) *dto.ParentEntityDTO {
	if p == nil {
		return nil
	}
	return &dto.ParentEntityDTO{
		Id:            clonePtr(p.Id),
		RequiredField: clonePtr(p.RequiredField),
	}
}

// ToDtoWithChildren adds child summaries; the children's parent is not repeated.
func (m *ParentEntityDtoMapper) ToDtoWithChildren(p *entity.ParentEntity) *dto.ParentEntityDTO {
	out := m.ToDto(p)
	if out == nil {
		return nil
	}
	out.Children = make([]*dto.ChildEntitySummaryDTO, 0)
	for _, child := range p.Children() {
		out.Children = append(out.Children, &dto.ChildEntitySummaryDTO{
			Id:         clonePtr(child.Id),
			ChildField: clonePtr(child.ChildField),
		})
	}
	return out
}

func (m *ParentEntityDtoMapper) ToSummaryDto(p *entity.ParentEntity) *dto.ParentEntitySummaryDTO {
	if p == nil {
		return nil
	}
	return &dto.ParentEntitySummaryDTO{
		Id:            clonePtr(p.Id),
		RequiredField: clonePtr(p.RequiredField),
	}
}

// ToEntity maps scalars only; a DTO never carries the children graph.
func (m *ParentEntityDtoMapper) ToEntity(d *dto.ParentEntityDTO) *entity.ParentEntity {
	if d == nil {
		return nil
	}
	return &entity.ParentEntity{
		Id:            clonePtr(d.Id),
		RequiredField: clonePtr(d.RequiredField),
	}
}

func (m *ParentEntityDtoMapper) PartialUpdate(target *entity.ParentEntity, patch *dto.ParentEntityPatch) {
	if target == nil || patch == nil {
		return
	}
	if patch.RequiredField.IsSet() {
		v := patch.RequiredField.Value
		target.RequiredField = &v
	}
}

func (m *ParentEntityDtoMapper) ToDtos(parents []*entity.ParentEntity) []*dto.ParentEntityDTO {
	out := make([]*dto.ParentEntityDTO, len(parents))
	for i, p := range parents {
		out[i] = m.ToDto(p)
	}
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
