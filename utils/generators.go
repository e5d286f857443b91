package utils

import (
	"github.com/google/uuid"
)

// GenerateID generates a random ID for entities
func GenerateID() string {
	return uuid.New().String()
}
