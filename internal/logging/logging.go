// Package logging configures the process-wide logger. The front-end
// emits UCI-shaped "info string ..." lines the way a controller on the
// other end of the pipe expects, but the underlying writer is a
// structured zap logger instead of the standard-library log package.
package logging

import "go.uber.org/zap"

// Logger wraps a zap.SugaredLogger, prefixing every line with the
// "info string" token a UCI-speaking controller ignores as free text
// rather than trying to parse as a protocol command.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a Logger writing to stdout in a plain console encoding —
// no timestamps or levels, since the front-end consumer is a chess GUI
// reading a line protocol, not a log aggregator.
func New() *Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.LevelKey = ""
	cfg.EncoderConfig.CallerKey = ""
	cfg.EncoderConfig.NameKey = ""

	logger, err := cfg.Build()
	if err != nil {
		return &Logger{sugar: zap.NewNop().Sugar()}
	}
	return &Logger{sugar: logger.Sugar()}
}

func (l *Logger) Info(args ...interface{}) {
	l.sugar.Info(append([]interface{}{"info string "}, args...)...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.sugar.Infof("info string "+format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf("info string error: "+format, args...)
}

func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}
