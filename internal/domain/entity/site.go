package entity

import "time"

// Site representa una sede física donde se guarda stock (multi-sede).
type Site struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
