package dto

// UserDTO is the owner summary: id and login only.
type UserDTO struct {
	Id    string `json:"id" validate:"required"`
	Login string `json:"login,omitempty"`
}
