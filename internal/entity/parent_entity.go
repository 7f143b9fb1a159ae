package entity

// ParentEntity owns a set of ChildEntity. The children collection is only
// changed through LinkChild and UnlinkChild.
type ParentEntity struct {
	Id            *int64
	RequiredField *string

	children []*ChildEntity
}

// Children returns a copy of the linked children.
func (p *ParentEntity) Children() []*ChildEntity {
	out := make([]*ChildEntity, len(p.children))
	copy(out, p.children)
	return out
}

// HasChild reports whether c is linked to p (by identity, see ChildEntity.Equals).
func (p *ParentEntity) HasChild(c *ChildEntity) bool {
	return p.indexOf(c) >= 0
}

func (p *ParentEntity) indexOf(c *ChildEntity) int {
	for i, existing := range p.children {
		if existing.Equals(c) {
			return i
		}
	}
	return -1
}

// Equals is true for the same instance, otherwise only when both ids are set and equal.
func (p *ParentEntity) Equals(other *ParentEntity) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.Id != nil && other.Id != nil && *p.Id == *other.Id
}
