package provider_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"

	"github.com/rocky-jaiswal/static-site-cdk/lib/cert/provider"
	"github.com/rocky-jaiswal/static-site-cdk/lib/site"
)

func edgeStack(region string) (awscdk.Stack, awsroute53.IHostedZone) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("CertTestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{Account: jsii.String("111111111111"), Region: jsii.String(region)},
	})
	zone := awsroute53.HostedZone_FromHostedZoneAttributes(stack, jsii.String("Zone"), &awsroute53.HostedZoneAttributes{
		HostedZoneId: jsii.String("Z0123456789EXAMPLE"),
		ZoneName:     jsii.String("example.org"),
	})
	return stack, zone
}

func descriptor() site.CertificateDescriptor {
	return site.CertificateDescriptor{
		ID:         site.CertificateID,
		DomainName: "example.org",
		ZoneID:     site.ZoneID,
		Region:     site.CertificateRegion,
	}
}

func TestNew_IssuesDNSValidatedCertificate(t *testing.T) {
	stack, zone := edgeStack("us-east-1")
	desc := descriptor()
	desc.AlternativeNames = []string{"www.example.org"}

	cert := provider.New().Get(stack, zone, desc)
	assert.NotNil(t, cert)

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::CertificateManager::Certificate"), map[string]any{
		"DomainName":              "example.org",
		"SubjectAlternativeNames": []any{"www.example.org"},
		"ValidationMethod":        "DNS",
		"DomainValidationOptions": assertions.Match_ArrayWith(&[]any{
			map[string]any{"DomainName": "example.org", "HostedZoneId": "Z0123456789EXAMPLE"},
		}),
	})
}

func TestImported_ReferencesExistingCertificate(t *testing.T) {
	stack, zone := edgeStack("us-east-1")
	desc := descriptor()
	desc.ImportedArn = "arn:aws:acm:us-east-1:111111111111:certificate/abc"

	cert := provider.For(desc).Get(stack, zone, desc)

	assert.Equal(t, desc.ImportedArn, *cert.CertificateArn())
	assertions.Template_FromStack(stack, nil).
		ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(0))
}

func TestFor_DefaultsToIssuing(t *testing.T) {
	stack, zone := edgeStack("us-east-1")
	provider.For(descriptor()).Get(stack, zone, descriptor())
	assertions.Template_FromStack(stack, nil).
		ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(1))
}

func TestGet_RefusesOtherRegions(t *testing.T) {
	t.Run("regional stack", func(t *testing.T) {
		stack, zone := edgeStack("eu-west-1")
		assert.Panics(t, func() { provider.New().Get(stack, zone, descriptor()) })
	})
	t.Run("regional descriptor", func(t *testing.T) {
		stack, zone := edgeStack("us-east-1")
		desc := descriptor()
		desc.Region = "eu-west-1"
		assert.Panics(t, func() { provider.New().Get(stack, zone, desc) })
	})
	t.Run("import without arn", func(t *testing.T) {
		stack, zone := edgeStack("us-east-1")
		assert.Panics(t, func() { provider.Imported().Get(stack, zone, descriptor()) })
	})
}
