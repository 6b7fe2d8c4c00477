package logger

import (
	"go.uber.org/zap"
)

// NewLogger - "production" gives a JSON logger, anything else a console logger at debug level
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
