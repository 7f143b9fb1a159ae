package dto

// ParentEntityDTO is the wire form of a parent. Children are only filled on an
// eager single read.
type ParentEntityDTO struct {
	Id            *int64                   `json:"id"`
	RequiredField *string                  `json:"requiredField" validate:"required,min=1"`
	Children      []*ChildEntitySummaryDTO `json:"children,omitempty"`
}

// ParentEntitySummaryDTO is the parent as seen from a child: never carries children.
type ParentEntitySummaryDTO struct {
	Id            *int64  `json:"id" validate:"required"`
	RequiredField *string `json:"requiredField,omitempty"`
}

func (d *ParentEntityDTO) Equals(other *ParentEntityDTO) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil || d.Id == nil || other.Id == nil {
		return false
	}
	return *d.Id == *other.Id
}

func (d *ParentEntitySummaryDTO) Equals(other *ParentEntitySummaryDTO) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil || d.Id == nil || other.Id == nil {
		return false
	}
	return *d.Id == *other.Id
}
