package stacks

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3deployment"
	"github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/rocky-jaiswal/static-site-cdk/config"
	"github.com/rocky-jaiswal/static-site-cdk/config/settings"
	"github.com/rocky-jaiswal/static-site-cdk/lib/cdklogger"
	"github.com/rocky-jaiswal/static-site-cdk/lib/cert/provider"
	"github.com/rocky-jaiswal/static-site-cdk/lib/site"
)

type StaticSiteProps struct {
	Builder *site.Builder
	// CertProvider overrides the provider picked from the certificate descriptor.
	CertProvider provider.CertProvider
	Logger       *zap.Logger
}

type StaticSiteExports struct {
	Plan         site.Plan
	Stack        awscdk.Stack
	CertStack    awscdk.Stack
	Zone         awsroute53.IHostedZone
	Bucket       awss3.Bucket
	Certificate  awscertificatemanager.ICertificate
	Distribution awscloudfront.Distribution
	Records      []awsroute53.ARecord
	Deployment   awss3deployment.BucketDeployment
}

// StaticSite builds the site plan and assembles it into the site stack and its
// us-east-1 certificate stack.
func StaticSite(app awscdk.App, props StaticSiteProps) (StaticSiteExports, error) {
	plan, err := props.Builder.Build()
	if err != nil {
		return StaticSiteExports{}, err
	}
	cfg := props.Builder.Config()
	logger := props.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("stacks")
	synthLog := cdklogger.New(logger)

	stackName := config.WithStackSuffix(app, "StaticSiteStack")
	stack := awscdk.NewStack(app, jsii.String(stackName), &awscdk.StackProps{
		Env:                   cfg.CdkEnv(),
		CrossRegionReferences: jsii.Bool(true),
		Description:           jsii.String("Static website " + cfg.Domain),
	})

	out := StaticSiteExports{Plan: plan, Stack: stack}

	out.Zone = awsroute53.HostedZone_FromLookup(stack, jsii.String(plan.Zone.ID), &awsroute53.HostedZoneProviderProps{
		DomainName: jsii.String(plan.Zone.DomainName),
	})

	out.Bucket = newBucket(stack, plan.Bucket)
	synthLog.Info(stack, plan.Bucket.ID, "bucket %s is destroyed with its contents when the stack is deleted", plan.Bucket.Name)

	certExports := CertStack(app, CertStackProps{
		Site:        cfg,
		Zone:        plan.Zone,
		Certificate: plan.Certificate,
		HostedZone:  out.Zone,
		Provider:    props.CertProvider,
	})
	out.CertStack = certExports.Stack
	out.Certificate = certExports.Certificate
	if plan.Certificate.Imported() && len(plan.Certificate.AlternativeNames) > 0 {
		synthLog.Warning(stack, plan.Certificate.ID, "imported certificate %s is not verified here; it must cover %s",
			plan.Certificate.ImportedArn, strings.Join(plan.Certificate.AlternativeNames, ", "))
	}

	out.Distribution = newDistribution(stack, plan.Distribution, out.Bucket, out.Certificate)

	for _, r := range plan.Records {
		out.Records = append(out.Records, awsroute53.NewARecord(stack, jsii.String(r.ID), &awsroute53.ARecordProps{
			Zone:       out.Zone,
			RecordName: jsii.String(r.RecordName),
			Target:     awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(out.Distribution)),
		}))
	}

	out.Deployment = newDeployment(stack, plan.Deployment, out.Bucket, out.Distribution)
	if page := plan.Deployment.FallbackErrorPage; page != nil {
		synthLog.Info(stack, plan.Deployment.ID, "content has no %s, deploying a generated one", page.Key)
	}

	for _, o := range plan.Outputs {
		awscdk.NewCfnOutput(stack, jsii.String(o.ID), &awscdk.CfnOutputProps{
			Value:       outputValue(o, out),
			Description: jsii.String(o.Description),
		})
	}

	keys := lo.Keys(plan.Tags)
	slices.Sort(keys)
	for _, k := range keys {
		awscdk.Tags_Of(stack).Add(jsii.String(k), jsii.String(plan.Tags[k]), nil)
		awscdk.Tags_Of(out.CertStack).Add(jsii.String(k), jsii.String(plan.Tags[k]), nil)
	}

	logger.Info("site stacks assembled",
		zap.String("stack", stackName),
		zap.String("certStack", *out.CertStack.StackName()),
		zap.String("domain", cfg.Domain))
	return out, nil
}

func newBucket(stack awscdk.Stack, d site.BucketDescriptor) awss3.Bucket {
	props := &awss3.BucketProps{
		BucketName:           jsii.String(d.Name),
		WebsiteIndexDocument: jsii.String(d.IndexDocument),
		WebsiteErrorDocument: jsii.String(d.ErrorDocument),
		Versioned:            jsii.Bool(d.Versioned),
	}
	if d.PublicRead {
		props.PublicReadAccess = jsii.Bool(true)
		// Bucket policies must be allowed for public read; ACLs stay blocked.
		props.BlockPublicAccess = awss3.BlockPublicAccess_BLOCK_ACLS()
	}
	if d.DestroyOnRemoval {
		props.RemovalPolicy = awscdk.RemovalPolicy_DESTROY
		props.AutoDeleteObjects = jsii.Bool(true)
	}
	return awss3.NewBucket(stack, jsii.String(d.ID), props)
}

func newDistribution(
	stack awscdk.Stack,
	d site.DistributionDescriptor,
	bucket awss3.Bucket,
	cert awscertificatemanager.ICertificate,
) awscloudfront.Distribution {
	if d.OriginProtocol != site.OriginProtocolHTTPOnly {
		panic(fmt.Sprintf("unsupported origin protocol %q", d.OriginProtocol))
	}
	if d.SSLMethod != site.SSLMethodSNI {
		panic(fmt.Sprintf("unsupported SSL method %q", d.SSLMethod))
	}

	// Website endpoints only speak HTTP.
	origin := awscloudfrontorigins.NewHttpOrigin(bucket.BucketWebsiteDomainName(), &awscloudfrontorigins.HttpOriginProps{
		ProtocolPolicy: awscloudfront.OriginProtocolPolicy_HTTP_ONLY,
	})

	return awscloudfront.NewDistribution(stack, jsii.String(d.ID), &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin:               origin,
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
		},
		DomainNames:            jsii.Strings(d.Aliases...),
		Certificate:            cert,
		MinimumProtocolVersion: securityPolicy(d.MinimumTLSPolicy),
		SslSupportMethod:       awscloudfront.SSLMethod_SNI,
		PriceClass:             priceClass(d.PriceClass),
	})
}

func securityPolicy(v string) awscloudfront.SecurityPolicyProtocol {
	switch v {
	case settings.TLSPolicy2018:
		return awscloudfront.SecurityPolicyProtocol_TLS_V1_2_2018
	case settings.TLSPolicy2019:
		return awscloudfront.SecurityPolicyProtocol_TLS_V1_2_2019
	case settings.TLSPolicy2021:
		return awscloudfront.SecurityPolicyProtocol_TLS_V1_2_2021
	}
	panic(fmt.Sprintf("unsupported minimum TLS policy %q", v))
}

func priceClass(v string) awscloudfront.PriceClass {
	switch v {
	case settings.PriceClass100:
		return awscloudfront.PriceClass_PRICE_CLASS_100
	case settings.PriceClass200:
		return awscloudfront.PriceClass_PRICE_CLASS_200
	case settings.PriceClassAll:
		return awscloudfront.PriceClass_PRICE_CLASS_ALL
	}
	panic(fmt.Sprintf("unsupported price class %q", v))
}

func newDeployment(
	stack awscdk.Stack,
	d site.DeploymentDescriptor,
	bucket awss3.Bucket,
	dist awscloudfront.Distribution,
) awss3deployment.BucketDeployment {
	sources := lo.Map(d.Sources, func(src site.ContentSource, i int) awss3deployment.ISource {
		if src.Kind == site.SourceRemote {
			from := awss3.Bucket_FromBucketName(stack, jsii.String(fmt.Sprintf("ContentSource%d", i)), jsii.String(src.Bucket))
			return awss3deployment.Source_Bucket(from, jsii.String(src.Key))
		}
		return awss3deployment.Source_Asset(jsii.String(src.Path), nil)
	})
	if page := d.FallbackErrorPage; page != nil {
		sources = append(sources, awss3deployment.Source_Data(jsii.String(page.Key), jsii.String(page.Body), nil))
	}

	return awss3deployment.NewBucketDeployment(stack, jsii.String(d.ID), &awss3deployment.BucketDeploymentProps{
		Sources:           &sources,
		DestinationBucket: bucket,
		Distribution:      dist,
		DistributionPaths: jsii.Strings(d.InvalidationPaths...),
	})
}

func outputValue(o site.Output, out StaticSiteExports) *string {
	switch o.Ref {
	case "":
		return jsii.String(o.Value)
	case out.Plan.Bucket.ID:
		return out.Bucket.BucketName()
	case out.Plan.Certificate.ID:
		return out.Certificate.CertificateArn()
	case out.Plan.Distribution.ID:
		return out.Distribution.DistributionId()
	}
	panic(fmt.Sprintf("output %s refers to unknown %q", o.ID, o.Ref))
}
