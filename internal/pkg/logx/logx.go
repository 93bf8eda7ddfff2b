package logx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the single logging interface injected into services and
// middleware. Production wiring backs it with zap; tests pass Nop().
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
}

type zapLogger struct {
	l *zap.Logger
}

// New builds a zap-backed logger. In dev mode output is human-readable
// console encoding at debug level; otherwise JSON at info level.
func New(dev bool) (Logger, error) {
	var cfg zap.Config
	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &zapLogger{l: l}, nil
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &zapLogger{l: zap.NewNop()}
}

func (z *zapLogger) Debug(msg string, fields ...zap.Field) { z.l.Debug(msg, fields...) }
func (z *zapLogger) Info(msg string, fields ...zap.Field)  { z.l.Info(msg, fields...) }
func (z *zapLogger) Warn(msg string, fields ...zap.Field)  { z.l.Warn(msg, fields...) }
func (z *zapLogger) Error(msg string, fields ...zap.Field) { z.l.Error(msg, fields...) }

func (z *zapLogger) With(fields ...zap.Field) Logger {
	return &zapLogger{l: z.l.With(fields...)}
}
