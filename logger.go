package bridgegen

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/bridgegen/include"
	"github.com/wippyai/bridgegen/shim"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the driver's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the driver logger and the generator packages it uses.
func SetLogger(l *zap.Logger) {
	logger = l
	include.SetLogger(l.Named("include"))
	shim.SetLogger(l.Named("shim"))
}
