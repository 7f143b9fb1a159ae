package mapper

import (
	"sample-be/internal/dto"
	"sample-be/internal/entity"
)

// ChildEntityDtoMapper projects ChildEntity to and from its wire form. Owner and
// parent are always projected as summaries.
type ChildEntityDtoMapper struct {
	parentMapper *ParentEntityDtoMapper
}

func NewChildEntityDtoMapper() *ChildEntityDtoMapper {
	return &ChildEntityDtoMapper{parentMapper: NewParentEntityDtoMapper()}
}

func (m *ChildEntityDtoMapper) ToDto(c *entity.ChildEntity) *dto.ChildEntityDTO {
	if c == nil {
		return nil
	}
	out := &dto.ChildEntityDTO{
		Id:         clonePtr(c.Id),
		ChildField: clonePtr(c.ChildField),
		Parent:     m.parentMapper.ToSummaryDto(c.Parent()),
	}
	if c.Owner != nil {
		out.Owner = &dto.UserDTO{Id: c.Owner.Id, Login: c.Owner.Login}
	}
	return out
}

// ToEntity maps scalars only. Owner and parent are resolved and attached by the
// service, a summary is not enough to rebuild them.
func (m *ChildEntityDtoMapper) ToEntity(d *dto.ChildEntityDTO) *entity.ChildEntity {
	if d == nil {
		return nil
	}
	return &entity.ChildEntity{
		Id:         clonePtr(d.Id),
		ChildField: clonePtr(d.ChildField),
	}
}

// PartialUpdate applies present keys. An explicit null clears childField.
func (m *ChildEntityDtoMapper) PartialUpdate(target *entity.ChildEntity, patch *dto.ChildEntityPatch) {
	if target == nil || patch == nil {
		return
	}
	if patch.ChildField.Present {
		if patch.ChildField.Null {
			target.ChildField = nil
		} else {
			v := patch.ChildField.Value
			target.ChildField = &v
		}
	}
}

func (m *ChildEntityDtoMapper) ToDtos(children []*entity.ChildEntity) []*dto.ChildEntityDTO {
	out := make([]*dto.ChildEntityDTO, len(children))
	for i, c := range children {
		out[i] = m.ToDto(c)
	}
	return out
}
