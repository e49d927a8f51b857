package domain

// Actor identidad resuelta que ejecuta una operación (del token JWT).
// Todos los casos de uso lo reciben como primer argumento.
type Actor struct {
	ID   string
	Role string // entity.RoleCustomer | RoleEmployee | RoleManager
}
