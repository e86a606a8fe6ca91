package config

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// StackSuffix reads 'stackSuffix' from the CDK context (`cdk synth -c stackSuffix=staging`).
// It lets several sites live side by side in one account.
func StackSuffix(scope constructs.Construct) string {
	ctxValue := scope.Node().TryGetContext(jsii.String("stackSuffix"))
	if ctxValue == nil {
		return ""
	}
	v, ok := ctxValue.(string)
	if !ok {
		panic(fmt.Sprintf("context %q must be a string, got %T", "stackSuffix", ctxValue))
	}
	return v
}

// WithStackSuffix appends the context stack suffix, if any, to name.
func WithStackSuffix(scope constructs.Construct, name string) string {
	if suffix := StackSuffix(scope); suffix != "" {
		return name + "-" + suffix
	}
	return name
}

// CdkEnv is the deployment environment of the main site stack.
func (s Site) CdkEnv() *awscdk.Environment {
	return &awscdk.Environment{
		Account: jsii.String(s.Account),
		Region:  jsii.String(s.Region),
	}
}
