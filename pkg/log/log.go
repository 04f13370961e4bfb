// Package log provides the logger used by the module's tooling.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the interface for logging.
type Logger interface {
	Debug(msg string)
	Debugf(template string, args ...interface{})
	Info(msg string)
	Infof(template string, args ...interface{})
	Warning(msg string)
	Warningf(template string, args ...interface{})
	Error(msg string)
	Errorf(template string, args ...interface{})
	With(args ...interface{}) Logger
}

type logger struct {
	sugar *zap.SugaredLogger
}

// NewDefaultProductionLogger returns a logger with the default production
// configuration, writing JSON to stderr.
func NewDefaultProductionLogger() (Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &logger{sugar: zapLogger.Sugar()}, nil
}

// NewSilentLogger returns a logger which discards everything.
func NewSilentLogger() Logger {
	return &logger{sugar: zap.NewNop().Sugar()}
}

func (l *logger) Debug(msg string) {
	l.sugar.Debug(msg)
}

func (l *logger) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

func (l *logger) Info(msg string) {
	l.sugar.Info(msg)
}

func (l *logger) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

func (l *logger) Warning(msg string) {
	l.sugar.Warn(msg)
}

func (l *logger) Warningf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

func (l *logger) Error(msg string) {
	l.sugar.Error(msg)
}

func (l *logger) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

func (l *logger) With(args ...interface{}) Logger {
	return &logger{sugar: l.sugar.With(args...)}
}
