package site

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rocky-jaiswal/static-site-cdk/config"
)

// Plan is the complete, ordered description of a site: every descriptor plus the outputs.
// Identical configurations produce identical plans.
type Plan struct {
	Zone         ZoneReference
	Bucket       BucketDescriptor
	Certificate  CertificateDescriptor
	Distribution DistributionDescriptor
	Records      []AliasRecordDescriptor
	Deployment   DeploymentDescriptor
	Outputs      []Output
	Tags         map[string]string
}

// Assemble checks that every descriptor only refers to dependencies produced by an earlier
// step and returns the plan with its outputs.
func (b *Builder) Assemble(
	zone ZoneReference,
	bucket BucketDescriptor,
	cert CertificateDescriptor,
	dist DistributionDescriptor,
	records []AliasRecordDescriptor,
	deploy DeploymentDescriptor,
) (Plan, error) {
	if cert.Region != CertificateRegion {
		return Plan{}, fmt.Errorf("%w: %s is in %q", ErrCertificateRegion, cert.ID, cert.Region)
	}

	refs := []struct {
		owner, field, got, want string
	}{
		{cert.ID, "zone", cert.ZoneID, zone.ID},
		{dist.ID, "origin bucket", dist.OriginBucketID, bucket.ID},
		{dist.ID, "certificate", dist.CertificateID, cert.ID},
		{deploy.ID, "bucket", deploy.BucketID, bucket.ID},
		{deploy.ID, "distribution", deploy.DistributionID, dist.ID},
	}
	for _, r := range records {
		refs = append(refs,
			struct{ owner, field, got, want string }{r.ID, "zone", r.ZoneID, zone.ID},
			struct{ owner, field, got, want string }{r.ID, "distribution", r.DistributionID, dist.ID},
		)
	}
	for _, r := range refs {
		if r.got != r.want {
			return Plan{}, fmt.Errorf("%w: %s %s %q, expected %q", ErrUnknownReference, r.owner, r.field, r.got, r.want)
		}
	}

	if len(records) == 0 {
		return Plan{}, fmt.Errorf("%w: no alias record targets %s", ErrUnknownReference, dist.ID)
	}
	if dup := lo.FindDuplicatesBy(records, func(r AliasRecordDescriptor) string { return r.ID }); len(dup) > 0 {
		return Plan{}, fmt.Errorf("%w: alias records for different names share the id %q", config.ErrInvalidConfig, dup[0].ID)
	}

	return Plan{
		Zone:         zone,
		Bucket:       bucket,
		Certificate:  cert,
		Distribution: dist,
		Records:      records,
		Deployment:   deploy,
		Outputs: []Output{
			{ID: OutputSite, Description: "Site URL", Value: b.cfg.SiteURL()},
			{ID: OutputBucket, Description: "Content bucket name", Ref: bucket.ID},
			{ID: OutputCertificate, Description: "Viewer certificate ARN", Ref: cert.ID},
			{ID: OutputDistribution, Description: "CloudFront distribution ID", Ref: dist.ID},
		},
		Tags: lo.Assign(map[string]string{}, b.settings.Tags),
	}, nil
}
