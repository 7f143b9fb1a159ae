package entity

// ChildEntity belongs to exactly one ParentEntity and one owning User.
type ChildEntity struct {
	Id         *int64
	ChildField *string
	Owner      *User

	parent *ParentEntity
}

// Parent returns the parent this child is linked to, or nil.
func (c *ChildEntity) Parent() *ParentEntity {
	return c.parent
}

// Equals is true for the same instance, otherwise only when both ids are set and equal.
func (c *ChildEntity) Equals(other *ChildEntity) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.Id != nil && other.Id != nil && *c.Id == *other.Id
}
