package provider

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/rocky-jaiswal/static-site-cdk/lib/site"
)

// dnsValidatedProvider issues a new certificate validated through records in the site zone.
type dnsValidatedProvider struct{}

// New returns a CertProvider that issues DNS-validated certificates.
func New() CertProvider {
	return &dnsValidatedProvider{}
}

func (p *dnsValidatedProvider) Get(
	scope constructs.Construct,
	zone awsroute53.IHostedZone,
	desc site.CertificateDescriptor,
) awscertificatemanager.ICertificate {
	mustBeEdge(scope, desc)

	certProps := &awscertificatemanager.CertificateProps{
		DomainName: jsii.String(desc.DomainName),
		Validation: awscertificatemanager.CertificateValidation_FromDns(zone),
	}
	if len(desc.AlternativeNames) > 0 {
		certProps.SubjectAlternativeNames = jsii.Strings(desc.AlternativeNames...)
	}

	return awscertificatemanager.NewCertificate(scope, jsii.String(desc.ID), certProps)
}
