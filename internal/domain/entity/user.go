package entity

import "time"

// Roles válidos para User.
const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// ValidRole reporta si s es uno de los tres roles conocidos.
func ValidRole(s string) bool {
	return s == RoleCustomer || s == RoleEmployee || s == RoleManager
}

// User representa un usuario del concesionario: cliente, empleado o gerente.
type User struct {
	ID           string
	Name         string
	Email        string // único en todo el sistema
	Phone        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
