package entity

import "time"

// User usuario del sistema. La autenticación es por email y password (bcrypt);
// no hay roles: cualquier usuario autenticado accede a todo el panel.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
