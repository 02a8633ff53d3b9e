// Package logging builds the zap logger shared by the server and the
// pipeline commands.
package logging

import (
	"go.uber.org/zap"
)

// New returns a production (JSON) logger when env is "production" and a
// development logger otherwise.
func New(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
