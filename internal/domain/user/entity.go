package user

import "time"

type Role string

const (
	RoleAdmin  Role = "administrador"
	RoleWorker Role = "trabajador"
)

type Status string

const (
	StatusActive   Status = "activo"
	StatusInactive Status = "desactivado"
)

// User is the account an attendance record belongs to. Accounts are
// provisioned by the administrative side of the system; this core only
// reads them (credential check, active-status check, active listing).
type User struct {
	ID            string
	RUT           string
	Name          string
	Email         string
	PasswordHash  string
	QRLoginSecret *string
	Role          Role
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Active reports whether the account may authenticate and register attendance.
func (u User) Active() bool {
	return u.Status == StatusActive
}
