package entity

import "time"

// User representa un vendedor del sistema. Es inmutable después del registro.
type User struct {
	ID           string
	Name         string
	Surname      string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
