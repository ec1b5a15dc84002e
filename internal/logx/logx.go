package logx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init installs the process-wide logger. Verbose enables debug-level output,
// which includes every external command line before it is spawned.
func Init(verbose bool) error {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// L returns the global sugared logger. It is never nil; before Init it is the
// no-op logger, so library callers do not have to configure logging to use
// the facade.
func L() *zap.SugaredLogger {
	return zap.L().Sugar()
}
