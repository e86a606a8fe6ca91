package cdklogger

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes synth-time messages to the construct metadata, where `cdk synth` prints
// them, and mirrors each one to a zap logger with the construct path attached.
type Logger struct {
	zl *zap.Logger
}

// New returns a Logger mirroring to l. A nil l disables mirroring.
func New(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{zl: l.Named("synth")}
}

// Info adds an INFO annotation to scope.
func (l *Logger) Info(scope constructs.Construct, constructID string, format string, args ...any) {
	msg := l.record(zapcore.InfoLevel, scope, constructID, format, args...)
	awscdk.Annotations_Of(scope).AddInfo(jsii.String(msg))
}

// Warning adds a WARNING annotation to scope. `cdk synth --strict` fails on warnings.
func (l *Logger) Warning(scope constructs.Construct, constructID string, format string, args ...any) {
	msg := l.record(zapcore.WarnLevel, scope, constructID, format, args...)
	awscdk.Annotations_Of(scope).AddWarning(jsii.String(msg))
}

func (l *Logger) record(lvl zapcore.Level, scope constructs.Construct, constructID string, format string, args ...any) string {
	path := *scope.Node().Path()
	msg := prefixed(path, constructID, fmt.Sprintf(format, args...))
	if ce := l.zl.Check(lvl, msg); ce != nil {
		ce.Write(zap.String("construct", path))
	}
	return msg
}

// prefixed adds "[constructID]" unless the construct path already ends with it.
func prefixed(path, constructID, msg string) string {
	if constructID == "" || path == constructID || strings.HasSuffix(path, "/"+constructID) {
		return msg
	}
	return fmt.Sprintf("[%s] %s", constructID, msg)
}
