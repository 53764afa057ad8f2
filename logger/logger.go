package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// Init builds the process logger. Any env other than "production" gets the
// development config.
func Init(env string) error {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	mu.Lock()
	log = l
	mu.Unlock()
	return nil
}

// L returns the process logger, a no-op logger before Init.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}
