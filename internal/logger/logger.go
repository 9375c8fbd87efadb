package logger

import "go.uber.org/zap"

// New builds the process logger: JSON to stdout in production,
// human-readable console everywhere else.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
