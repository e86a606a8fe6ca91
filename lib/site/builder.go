package site

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws/arn"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/rocky-jaiswal/static-site-cdk/config"
	"github.com/rocky-jaiswal/static-site-cdk/config/settings"
	"github.com/rocky-jaiswal/static-site-cdk/lib/renderer"
)

// CertificateRegion is the only region CloudFront accepts viewer certificates from.
const CertificateRegion = "us-east-1"

// Construct IDs used in the synthesized stacks.
const (
	ZoneID             = "Zone"
	BucketID           = "SiteBucket"
	CertificateID      = "SiteCertificate"
	DistributionID     = "SiteDistribution"
	AliasRecordID      = "Site-Alias-Record"
	DeploymentID       = "Deploy-With-Invalidation"
	InvalidateAllPaths = "/*"
	OutputSite         = "Site"
	OutputBucket       = "Bucket"
	OutputCertificate  = "Certificate"
	OutputDistribution = "Distribution-Id"
)

// Builder turns a site configuration into the descriptors of the site graph.
// Every file system access happens in NewBuilder; the step methods are pure.
type Builder struct {
	cfg      config.Site
	settings settings.Settings
	source   ContentSource
	errPage  *ErrorPage
	logger   *zap.Logger
}

// NewBuilder validates cfg and s, resolves the content source and renders the fallback
// error page when the content tree needs one. A nil logger is replaced with a no-op.
func NewBuilder(cfg config.Site, s settings.Settings, logger *zap.Logger) (*Builder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("site").With(zap.String("domain", cfg.Domain))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s = s.WithDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := checkCertificateArn(s.CertificateArn); err != nil {
		return nil, err
	}
	if err := checkAlternativeNames(cfg.ZoneName(), s.AlternativeNames); err != nil {
		return nil, err
	}

	source, err := ParseContents(cfg.Contents)
	if err != nil {
		return nil, err
	}

	b := &Builder{cfg: cfg, settings: s, source: source, logger: logger}

	if source.IsDir() && s.FallbackErrorPageOrDefault() && !source.hasFile(s.ErrorDocument) {
		body, err := renderer.ErrorPage(renderer.ErrorPageData{
			Domain:        cfg.Domain,
			IndexDocument: s.IndexDocument,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to render fallback error page: %w", err)
		}
		b.errPage = &ErrorPage{Key: s.ErrorDocument, Body: body}
		logger.Info("content tree has no error document, deploying a generated one",
			zap.String("errorDocument", s.ErrorDocument))
	}

	logger.Debug("site builder ready",
		zap.String("zone", cfg.ZoneName()),
		zap.Stringer("contents", source))
	return b, nil
}

func checkCertificateArn(raw string) error {
	if raw == "" {
		return nil
	}
	parsed, err := arn.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: certificateArn: %v", config.ErrInvalidConfig, err)
	}
	if parsed.Service != "acm" {
		return fmt.Errorf("%w: certificateArn %q is not an ACM certificate", config.ErrInvalidConfig, raw)
	}
	if parsed.Region != CertificateRegion {
		return fmt.Errorf("%w: certificateArn %q is in %s", ErrCertificateRegion, raw, parsed.Region)
	}
	return nil
}

// checkAlternativeNames rejects names outside zone: their records and certificate
// validation records could not be created there.
func checkAlternativeNames(zone string, names []string) error {
	outside := lo.Filter(names, func(name string, _ int) bool {
		return name != zone && !strings.HasSuffix(name, "."+zone)
	})
	if len(outside) > 0 {
		return fmt.Errorf("%w: alternativeNames %v are not in zone %q", config.ErrInvalidConfig, outside, zone)
	}
	return nil
}

// Config returns a copy of the site configuration.
func (b *Builder) Config() config.Site { return b.cfg }

// Settings returns the effective settings with defaults applied.
func (b *Builder) Settings() settings.Settings { return b.settings }

// Source returns the resolved content source.
func (b *Builder) Source() ContentSource { return b.source }

// ResolveZone names the hosted zone the site records live in.
func (b *Builder) ResolveZone() ZoneReference {
	return ZoneReference{ID: ZoneID, DomainName: b.cfg.ZoneName()}
}

// ProvisionBucket describes the public, versioned website bucket named after the domain.
func (b *Builder) ProvisionBucket() BucketDescriptor {
	return BucketDescriptor{
		ID:               BucketID,
		Name:             b.cfg.Domain,
		IndexDocument:    b.settings.IndexDocument,
		ErrorDocument:    b.settings.ErrorDocument,
		PublicRead:       true,
		Versioned:        true,
		DestroyOnRemoval: true,
	}
}

// ProvisionCertificate describes the edge certificate, DNS validated in zone.
func (b *Builder) ProvisionCertificate(zone ZoneReference) CertificateDescriptor {
	return CertificateDescriptor{
		ID:               CertificateID,
		DomainName:       b.cfg.Domain,
		AlternativeNames: b.alternativeNames(),
		ZoneID:           zone.ID,
		Region:           CertificateRegion,
		ImportedArn:      b.settings.CertificateArn,
	}
}

// ProvisionDistribution describes the distribution serving bucket over HTTPS with cert.
func (b *Builder) ProvisionDistribution(bucket BucketDescriptor, cert CertificateDescriptor) DistributionDescriptor {
	return DistributionDescriptor{
		ID:               DistributionID,
		OriginBucketID:   bucket.ID,
		OriginProtocol:   OriginProtocolHTTPOnly,
		Aliases:          append([]string{b.cfg.Domain}, b.alternativeNames()...),
		CertificateID:    cert.ID,
		MinimumTLSPolicy: b.settings.MinimumTLSPolicy,
		SSLMethod:        SSLMethodSNI,
		PriceClass:       b.settings.PriceClass,
	}
}

// PublishAliases describes one A alias record per distribution alias, the domain first.
func (b *Builder) PublishAliases(zone ZoneReference, dist DistributionDescriptor) []AliasRecordDescriptor {
	return lo.Map(dist.Aliases, func(name string, i int) AliasRecordDescriptor {
		id := AliasRecordID
		if i > 0 {
			id = AliasRecordID + "-" + strings.ReplaceAll(name, ".", "-")
		}
		return AliasRecordDescriptor{
			ID:             id,
			ZoneID:         zone.ID,
			RecordName:     name,
			DistributionID: dist.ID,
		}
	})
}

// DeployContent describes the upload of the content tree and the full invalidation after it.
func (b *Builder) DeployContent(bucket BucketDescriptor, dist DistributionDescriptor) DeploymentDescriptor {
	return DeploymentDescriptor{
		ID:                DeploymentID,
		Sources:           []ContentSource{b.source},
		BucketID:          bucket.ID,
		DistributionID:    dist.ID,
		InvalidationPaths: []string{InvalidateAllPaths},
		FallbackErrorPage: b.errPage,
	}
}

// Build runs every step in order and assembles the plan.
func (b *Builder) Build() (Plan, error) {
	zone := b.ResolveZone()
	bucket := b.ProvisionBucket()
	cert := b.ProvisionCertificate(zone)
	dist := b.ProvisionDistribution(bucket, cert)
	records := b.PublishAliases(zone, dist)
	deploy := b.DeployContent(bucket, dist)

	plan, err := b.Assemble(zone, bucket, cert, dist, records, deploy)
	if err != nil {
		return Plan{}, err
	}
	b.logger.Debug("site plan built",
		zap.Int("records", len(plan.Records)),
		zap.Bool("importedCertificate", cert.Imported()))
	return plan, nil
}

// alternativeNames returns the configured extra names without the domain or duplicates.
func (b *Builder) alternativeNames() []string {
	names := lo.Uniq(b.settings.AlternativeNames)
	return lo.Without(names, b.cfg.Domain)
}
