package aslr

import (
	"errors"
	"log"
	"sync"

	"go.uber.org/zap"
)

// ErrUnsupported is returned by BiasSource implementations that cannot
// determine the load bias on the current platform.
var ErrUnsupported = errors.New("load bias is not available on this platform")

var (
	// DefaultExitFn is invoked by functions and methods ending in
	// the "OrExit" suffix when an error occurs.
	DefaultExitFn = func(err error) {
		log.Fatalln(err)
	}
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger. A nil logger
// disables logging.
// This must be called before any Resolver is used.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	logger = l
}
