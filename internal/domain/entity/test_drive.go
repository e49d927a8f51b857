package entity

import "time"

// Estados válidos para TestDrive. Scheduled es el inicial; no hay grafo de
// transiciones: cualquier estado puede sobrescribir cualquier otro.
const (
	TestDriveScheduled = "scheduled"
	TestDriveCompleted = "completed"
	TestDriveCancelled = "cancelled"
)

// ValidTestDriveStatus reporta si s es un estado de test drive conocido.
func ValidTestDriveStatus(s string) bool {
	return s == TestDriveScheduled || s == TestDriveCompleted || s == TestDriveCancelled
}

// TestDrive representa una prueba de manejo agendada por un cliente.
// EmployeeID es opcional (string vacío = sin asignar).
type TestDrive struct {
	ID          string
	CarID       string
	CustomerID  string
	EmployeeID  string
	ScheduledAt time.Time
	Status      string
}
