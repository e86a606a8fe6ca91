// Package preflight checks, before synthesis, the AWS facts a site deployment depends on
// but CloudFormation only discovers halfway through: the hosted zone exists and the
// bucket name is not owned by another account.
package preflight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/route53"
	"github.com/aws/aws-sdk-go/service/route53/route53iface"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"go.uber.org/zap"

	"github.com/rocky-jaiswal/static-site-cdk/config"
)

var (
	ErrZoneNotFound    = errors.New("hosted zone not found")
	ErrBucketNameTaken = errors.New("bucket name owned by another account")
)

const zoneListingPageSize = "10"

// Checker runs the preflight checks against Route53 and S3.
type Checker struct {
	route53 route53iface.Route53API
	s3      s3iface.S3API
	logger  *zap.Logger
}

// New returns a Checker using clients created from sess.
func New(sess client.ConfigProvider, logger *zap.Logger) *Checker {
	return NewWithClients(route53.New(sess), s3.New(sess), logger)
}

// NewWithClients returns a Checker using the given clients. A nil logger is replaced with a no-op.
func NewWithClients(r53 route53iface.Route53API, s3c s3iface.S3API, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{route53: r53, s3: s3c, logger: logger.Named("preflight")}
}

// Run performs every check for cfg and returns all failures joined.
func (c *Checker) Run(ctx context.Context, cfg config.Site) error {
	return errors.Join(
		c.CheckZone(ctx, cfg.ZoneName()),
		c.CheckBucket(ctx, cfg.Domain),
	)
}

// CheckZone fails with ErrZoneNotFound unless a public hosted zone named zoneName exists.
func (c *Checker) CheckZone(ctx context.Context, zoneName string) error {
	fqdn := strings.TrimSuffix(zoneName, ".") + "."
	out, err := c.route53.ListHostedZonesByNameWithContext(ctx, &route53.ListHostedZonesByNameInput{
		DNSName:  aws.String(fqdn),
		MaxItems: aws.String(zoneListingPageSize),
	})
	if err != nil {
		return fmt.Errorf("failed to list hosted zones: %w", err)
	}

	// Results are sorted by name starting at DNSName, so matches come first.
	for _, z := range out.HostedZones {
		if aws.StringValue(z.Name) != fqdn {
			break
		}
		if z.Config != nil && aws.BoolValue(z.Config.PrivateZone) {
			continue
		}
		c.logger.Debug("hosted zone found",
			zap.String("zone", fqdn),
			zap.String("id", aws.StringValue(z.Id)))
		return nil
	}
	return fmt.Errorf("%w: %s", ErrZoneNotFound, zoneName)
}

// CheckBucket fails with ErrBucketNameTaken when bucket exists in another account.
// A bucket this account already owns is accepted as a redeploy.
func (c *Checker) CheckBucket(ctx context.Context, bucket string) error {
	_, err := c.s3.HeadBucketWithContext(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err == nil {
		c.logger.Warn("bucket already exists in this account, deploying into it", zap.String("bucket", bucket))
		return nil
	}

	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) {
		switch reqErr.StatusCode() {
		case http.StatusNotFound:
			return nil
		case http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrBucketNameTaken, bucket)
		}
	}
	return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
}
