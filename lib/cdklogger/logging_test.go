package cdklogger

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPrefixed(t *testing.T) {
	cases := []struct {
		name, path, id, want string
	}{
		{"no id", "Stack/Bucket", "", "hello"},
		{"path ends with id", "Stack/Bucket", "Bucket", "hello"},
		{"path is id", "Stack", "Stack", "hello"},
		{"different id", "Stack", "Bucket", "[Bucket] hello"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, prefixed(tc.path, tc.id, "hello"))
		})
	}
}

func TestLogger_AnnotatesAndMirrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := New(zap.New(core))

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("LogStack"), nil)

	l.Info(stack, "Content", "deploying %s", "./site")
	l.Warning(stack, "", "bucket %q already exists", "example.org")

	annotations := assertions.Annotations_FromStack(stack)
	annotations.HasInfo(jsii.String("/LogStack"), jsii.String("[Content] deploying ./site"))
	annotations.HasWarning(jsii.String("/LogStack"), jsii.String(`bucket "example.org" already exists`))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "synth", entries[0].LoggerName)
	assert.Equal(t, "[Content] deploying ./site", entries[0].Message)
	assert.Equal(t, "LogStack", entries[0].ContextMap()["construct"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestNew_NilLoggerIsSilent(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("QuietStack"), nil)

	assert.NotPanics(t, func() {
		New(nil).Info(stack, "", "nothing to see")
	})
	assertions.Annotations_FromStack(stack).HasInfo(jsii.String("/QuietStack"), jsii.String("nothing to see"))
}
