package domain

import "github.com/google/uuid"

// User is the actor interacting with a panel
type User struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	UUID     uuid.UUID `json:"uuid"`
}
