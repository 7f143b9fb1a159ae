package model

// All lists the models in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&ParentEntity{},
		&ChildEntity{},
	}
}
