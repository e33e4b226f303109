// uuid simple generator that allows mocking
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks github.com/KirkDiggler/tool-replenish/internal/uuid Generator

import (
	"github.com/google/uuid"
)

// Generator produces attempt IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with google/uuid
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
