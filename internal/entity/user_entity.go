// FILE: internal/entity/user_entity.go
package entity

// User is a reference to an identity owned by the external identity subsystem.
type User struct {
	Id    string
	Login string
}
