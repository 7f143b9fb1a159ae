package dto

type ChildEntityDTO struct {
	Id         *int64                  `json:"id"`
	ChildField *string                 `json:"childField"`
	Owner      *UserDTO                `json:"owner" validate:"required"`
	Parent     *ParentEntitySummaryDTO `json:"parent" validate:"required"`
}

// ChildEntitySummaryDTO is the child as seen from its parent: no owner, no parent.
type ChildEntitySummaryDTO struct {
	Id         *int64  `json:"id"`
	ChildField *string `json:"childField"`
}

func (d *ChildEntityDTO) Equals(other *ChildEntityDTO) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil || d.Id == nil || other.Id == nil {
		return false
	}
	return *d.Id == *other.Id
}
