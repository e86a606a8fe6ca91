package provider

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/rocky-jaiswal/static-site-cdk/lib/site"
)

type importedProvider struct{}

// Imported returns a CertProvider that references an existing certificate by ARN.
func Imported() CertProvider {
	return &importedProvider{}
}

func (p *importedProvider) Get(
	scope constructs.Construct,
	_ awsroute53.IHostedZone,
	desc site.CertificateDescriptor,
) awscertificatemanager.ICertificate {
	mustBeEdge(scope, desc)
	if !desc.Imported() {
		panic(fmt.Sprintf("certificate %s has no ARN to import", desc.ID))
	}
	return awscertificatemanager.Certificate_FromCertificateArn(scope, jsii.String(desc.ID), jsii.String(desc.ImportedArn))
}
