package dto

import "time"

// CreateTestDriveRequest agenda de test drive. CustomerID solo lo puede fijar
// manager/employee; un customer siempre agenda para sí mismo.
type CreateTestDriveRequest struct {
	CarID       string     `json:"car_id"`
	CustomerID  string     `json:"customer_id"` // opcional para customers
	EmployeeID  string     `json:"employee_id"` // opcional
	ScheduledAt *time.Time `json:"scheduled_at"` // nil = ahora
}

// UpdateTestDriveRequest patch de test drive; punteros nil = sin cambio.
// Cualquier estado puede sobrescribir cualquier otro (sin grafo de transiciones).
type UpdateTestDriveRequest struct {
	EmployeeID  *string    `json:"employee_id"` // solo manager
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      *string    `json:"status"`
}

// TestDriveResponse proyección de test drive.
type TestDriveResponse struct {
	ID          string    `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Car         CarRef    `json:"car"`
	Customer    UserRef   `json:"customer"`
	Employee    *UserRef  `json:"employee,omitempty"`
}
