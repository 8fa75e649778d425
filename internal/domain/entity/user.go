package entity

import "time"

// User representa un usuario registrado. No se actualiza ni se elimina.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt, nunca la contraseña en claro
	CreatedAt    time.Time
}
