package logger

import (
	"go.uber.org/zap"
)

// L is the shared logger. The renderer owns the terminal, so it writes
// to a file instead of stderr. Safe to use before Init; it is a no-op
// logger until then.
var L = zap.NewNop()

// Re-exported field constructors so callers need not import zap.
var (
	Err    = zap.Error
	String = zap.String
	Int    = zap.Int
	Float  = zap.Float64
)

func Init(path string) error {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	l, err := cfg.Build()
	if nil != err {
		return err
	}
	L = l
	return nil
}

func Sync() {
	_ = L.Sync()
}
