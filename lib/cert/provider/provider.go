package provider

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"

	"github.com/rocky-jaiswal/static-site-cdk/lib/site"
)

// CertProvider defines how to obtain the viewer certificate of a site.
type CertProvider interface {
	// Get returns the certificate described by desc under scope. zone is the hosted zone
	// used for DNS validation; providers that do not issue certificates ignore it.
	// Get panics when desc or scope is not pinned to site.CertificateRegion.
	Get(scope constructs.Construct, zone awsroute53.IHostedZone, desc site.CertificateDescriptor) awscertificatemanager.ICertificate
}

// For picks the provider matching desc: Imported for a descriptor carrying an ARN, New otherwise.
func For(desc site.CertificateDescriptor) CertProvider {
	if desc.Imported() {
		return Imported()
	}
	return New()
}

// mustBeEdge panics unless desc and the stack holding scope are in the certificate region.
// A stack with an unresolved region is accepted; CloudFormation pins it at deploy time.
func mustBeEdge(scope constructs.Construct, desc site.CertificateDescriptor) {
	if desc.Region != site.CertificateRegion {
		panic(fmt.Errorf("%w: descriptor %s is in %q", site.ErrCertificateRegion, desc.ID, desc.Region))
	}
	region := awscdk.Stack_Of(scope).Region()
	if region == nil || *awscdk.Token_IsUnresolved(region) {
		return
	}
	if *region != site.CertificateRegion {
		panic(fmt.Errorf("%w: stack %s is in %q", site.ErrCertificateRegion, *awscdk.Stack_Of(scope).StackName(), *region))
	}
}
