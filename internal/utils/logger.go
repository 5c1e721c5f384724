package utils

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process logger: human-readable in dev,
// JSON production config everywhere else.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENV") == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
