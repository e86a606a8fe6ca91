package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/jsii-runtime-go"

	"github.com/rocky-jaiswal/static-site-cdk/config"
	"github.com/rocky-jaiswal/static-site-cdk/lib/cert/provider"
	"github.com/rocky-jaiswal/static-site-cdk/lib/site"
)

type CertStackProps struct {
	Site        config.Site
	Zone        site.ZoneReference
	Certificate site.CertificateDescriptor
	// HostedZone is the zone resolved by the site stack. Only its literal ID and name are
	// read, so no cross-stack reference is created for it.
	HostedZone awsroute53.IHostedZone
	// Provider defaults to provider.For(Certificate).
	Provider provider.CertProvider
}

type CertStackExports struct {
	Stack       awscdk.Stack
	Certificate awscertificatemanager.ICertificate
}

// CertStack creates a stack with the site certificate, fixed at us-east-1.
// This is necessary because CloudFront requires the certificate to be in us-east-1.
func CertStack(app awscdk.App, props CertStackProps) CertStackExports {
	env := props.Site.CdkEnv()
	env.Region = jsii.String(site.CertificateRegion)
	stackName := config.WithStackSuffix(app, "StaticSite-Cert")
	stack := awscdk.NewStack(app, jsii.String(stackName), &awscdk.StackProps{
		Env:                   env,
		CrossRegionReferences: jsii.Bool(true),
		Description:           jsii.String("Viewer certificate of " + props.Site.Domain),
	})

	zone := awsroute53.HostedZone_FromHostedZoneAttributes(stack, jsii.String(props.Zone.ID), &awsroute53.HostedZoneAttributes{
		HostedZoneId: props.HostedZone.HostedZoneId(),
		ZoneName:     props.HostedZone.ZoneName(),
	})

	p := props.Provider
	if p == nil {
		p = provider.For(props.Certificate)
	}

	return CertStackExports{
		Stack:       stack,
		Certificate: p.Get(stack, zone, props.Certificate),
	}
}
