package data

import (
	"sync"

	"github.com/gfengTT/mlpack/logger"
)

var (
	logMu sync.RWMutex
	log   logger.Logger = logger.Default()
)

// SetLogger replaces the diagnostic sink shared by all save and load
// calls. Passing nil silences diagnostics. Safe for concurrent use.
func SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.Nil
	}
	logMu.Lock()
	log = l
	logMu.Unlock()
}

func sink() logger.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return log
}

// report finishes a dispatch call that failed. Every failure of every
// entry point funnels through here: in fatal mode the error is thrown
// as a *FatalError and this function does not return; otherwise the
// diagnostic goes to the sink at warning level and the call yields
// false.
func report(fatal bool, err error) bool {
	if fatal {
		panic(&FatalError{Err: err})
	}
	sink().Warnf("%v", err)
	return false
}
