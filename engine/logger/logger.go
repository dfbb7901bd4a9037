package logger

import "go.uber.org/zap"

// Log is the process-wide logger. It starts as a development logger so
// commands can log before any setup; replace it with Set.
var Log *zap.Logger

func init() {
	l, err := zap.NewDevelopment()
	if err != nil {
		l = zap.NewNop()
	}
	Log = l
}

// Set replaces Log and returns a func restoring the previous logger.
func Set(l *zap.Logger) (restore func()) {
	prev := Log
	Log = l
	return func() { Log = prev }
}

// Init builds a production or development logger and installs it.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}
