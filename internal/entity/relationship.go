package entity

// LinkChild attaches child to parent. Both sides of the relationship are updated
// together; a child linked to another parent is detached from it first.
func LinkChild(parent *ParentEntity, child *ChildEntity) {
	if parent == nil || child == nil {
		return
	}
	if child.parent != nil && child.parent != parent {
		UnlinkChild(child.parent, child)
	}
	if i := parent.indexOf(child); i >= 0 {
		// same identity, keep the newest instance
		parent.children[i] = child
	} else {
		parent.children = append(parent.children, child)
	}
	child.parent = parent
}

// UnlinkChild is the inverse of LinkChild: it removes child from the collection
// and clears the back-reference.
func UnlinkChild(parent *ParentEntity, child *ChildEntity) {
	if parent == nil || child == nil {
		return
	}
	if i := parent.indexOf(child); i >= 0 {
		parent.children = append(parent.children[:i], parent.children[i+1:]...)
	}
	if child.parent == parent || child.parent.Equals(parent) {
		child.parent = nil
	}
}
