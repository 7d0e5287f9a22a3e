package raypick

import (
	"go.uber.org/zap"
)

// Logger is the diagnostic sink for non-fatal warnings, such as ambiguous
// selection queries. Hosts plug their own via WithLogger; the default
// discards everything.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type zapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger returns a production zap logger named "raypick".
func NewZapLogger() (Logger, error) {
	zl, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &zapLogger{s: zl.Named("raypick").Sugar()}, nil
}

// WrapZap adapts a zap logger supplied by the host.
func WrapZap(zl *zap.Logger) Logger {
	return &zapLogger{s: zl.Sugar()}
}

func (l *zapLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l *zapLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l *zapLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l *zapLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

type nopLogger struct{}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
