package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEditor:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
