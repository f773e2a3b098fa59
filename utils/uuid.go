package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random (v4) identifier string, used for bid and request IDs
func GenerateID() string {
	return uuid.NewString()
}
