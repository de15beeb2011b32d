package entity

import "github.com/shopspring/decimal"

// User cuenta gestionada desde la sección de administración.
// Password solo viaja en altas/cambios; la API nunca lo devuelve.
type User struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	FullName string          `json:"full_name"`
	Password string          `json:"password,omitempty"`
	Roles    string          `json:"roles"` // autoridad del servidor: ROLE_ADMIN, ROLE_EMPLOYEE...
	Sales    int             `json:"sales"`
	Earnings decimal.Decimal `json:"earnings"`
}

func (u *User) SetID(id int64) { u.ID = id }

// Identity proyecta el usuario a la identidad de sesión.
func (u User) Identity() Identity {
	role, _ := RoleFromAuthority(u.Roles)
	return Identity{ID: u.ID, Username: u.Username, FullName: u.FullName, Role: role}
}
