package site

// ZoneReference identifies an existing hosted zone. Zones are looked up, never created.
type ZoneReference struct {
	ID         string
	DomainName string
}

// BucketDescriptor describes the content bucket. Name is always the site domain.
type BucketDescriptor struct {
	ID               string
	Name             string
	IndexDocument    string
	ErrorDocument    string
	PublicRead       bool
	Versioned        bool
	DestroyOnRemoval bool
}

// CertificateDescriptor describes the edge certificate. Region is always CertificateRegion.
// A non-empty ImportedArn means the certificate already exists and is only referenced.
type CertificateDescriptor struct {
	ID               string
	DomainName       string
	AlternativeNames []string
	ZoneID           string
	Region           string
	ImportedArn      string
}

// Imported reports whether the certificate is referenced by ARN instead of issued.
func (c CertificateDescriptor) Imported() bool {
	return c.ImportedArn != ""
}

// Origin protocol and SSL support method used by the distribution.
const (
	OriginProtocolHTTPOnly = "http-only"
	SSLMethodSNI           = "sni-only"
)

// DistributionDescriptor describes the CDN distribution in front of the bucket website endpoint.
type DistributionDescriptor struct {
	ID               string
	OriginBucketID   string
	OriginProtocol   string
	Aliases          []string
	CertificateID    string
	MinimumTLSPolicy string
	SSLMethod        string
	PriceClass       string
}

// AliasRecordDescriptor describes an A alias record pointing RecordName at the distribution.
type AliasRecordDescriptor struct {
	ID             string
	ZoneID         string
	RecordName     string
	DistributionID string
}

// SourceKind tells how content reaches the deployment.
type SourceKind string

const (
	// SourceLocal is a local directory or zip archive uploaded as a CDK asset.
	SourceLocal SourceKind = "local"
	// SourceRemote is a zip archive already stored in S3.
	SourceRemote SourceKind = "remote"
)

// ContentSource is one input of the content deployment.
type ContentSource struct {
	Kind SourceKind
	// Path is set for SourceLocal.
	Path string
	// Dir is true when Path is a directory rather than an archive.
	Dir bool
	// Bucket and Key are set for SourceRemote.
	Bucket string
	Key    string
}

// ErrorPage is a generated object deployed next to the user content.
type ErrorPage struct {
	Key  string
	Body string
}

// DeploymentDescriptor describes the content upload and the cache invalidation that follows it.
type DeploymentDescriptor struct {
	ID                string
	Sources           []ContentSource
	BucketID          string
	DistributionID    string
	InvalidationPaths []string
	FallbackErrorPage *ErrorPage
}

// Output is a stack output. Ref names the descriptor whose attribute supplies the value
// (bucket name, certificate ARN or distribution ID); an empty Ref means Value is literal.
type Output struct {
	ID          string
	Description string
	Value       string
	Ref         string
}
