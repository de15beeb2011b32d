package entity

import "strings"

// Role categoría de acceso dentro de la consola (enum cerrado).
type Role string

// Roles válidos para Identity.
const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleCustomer Role = "CUSTOMER"
)

// authorityPrefix prefijo que usa el servidor en la autoridad ("ROLE_ADMIN").
const authorityPrefix = "ROLE_"

// Valid indica si r pertenece al enum.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// RoleFromAuthority normaliza la autoridad enviada por el servidor al enum Role.
// Acepta "ROLE_ADMIN" y "ADMIN" sin distinguir mayúsculas. Lo no reconocido cae en
// CUSTOMER (mínimo privilegio); known=false permite registrar el valor extraño.
func RoleFromAuthority(authority string) (role Role, known bool) {
	s := strings.ToUpper(strings.TrimSpace(authority))
	s = strings.TrimPrefix(s, authorityPrefix)
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleEmployee:
		return RoleEmployee, true
	case RoleCustomer:
		return RoleCustomer, true
	}
	return RoleCustomer, false
}

// Identity usuario autenticado tal como lo conoce la consola.
// ID es 0 cuando la respuesta de login no lo incluye.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}

// Valid reporta si la identidad es utilizable (username y rol del enum).
func (i Identity) Valid() bool {
	return i.Username != "" && i.Role.Valid()
}
