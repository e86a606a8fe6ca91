package settings

// Wire values for CloudFront viewer TLS policies and price classes.
const (
	TLSPolicy2018 = "TLSv1.2_2018"
	TLSPolicy2019 = "TLSv1.2_2019"
	TLSPolicy2021 = "TLSv1.2_2021"

	PriceClass100 = "PriceClass_100"
	PriceClass200 = "PriceClass_200"
	PriceClassAll = "PriceClass_All"
)

// Defaults applied to empty settings fields.
const (
	DefaultIndexDocument    = "index.html"
	DefaultErrorDocument    = "error.html"
	DefaultMinimumTLSPolicy = TLSPolicy2019
	DefaultPriceClass       = PriceClassAll
)

// Settings tunes the site beyond the four required parameters.
// Every field is optional; see Default for the effective values.
type Settings struct {
	// IndexDocument and ErrorDocument configure the bucket website endpoint.
	IndexDocument string `yaml:"indexDocument" toml:"indexDocument" validate:"omitempty,excludes=/"`
	ErrorDocument string `yaml:"errorDocument" toml:"errorDocument"`
	// MinimumTLSPolicy is the CloudFront viewer security policy.
	MinimumTLSPolicy string `yaml:"minimumTlsPolicy" toml:"minimumTlsPolicy" validate:"omitempty,oneof=TLSv1.2_2018 TLSv1.2_2019 TLSv1.2_2021"`
	PriceClass       string `yaml:"priceClass" toml:"priceClass" validate:"omitempty,oneof=PriceClass_100 PriceClass_200 PriceClass_All"`
	// AlternativeNames are extra FQDNs served by the distribution. Each one becomes a
	// certificate SAN, a distribution alias and an A alias record in the site zone.
	AlternativeNames []string `yaml:"alternativeNames" toml:"alternativeNames" validate:"omitempty,dive,fqdn,lowercase"`
	// CertificateArn imports an existing us-east-1 certificate instead of issuing one.
	CertificateArn string `yaml:"certificateArn" toml:"certificateArn" validate:"omitempty,startswith=arn:"`
	// FallbackErrorPage deploys a generated error page when the content tree has none.
	// Pointer to distinguish between explicitly false and not set.
	FallbackErrorPage *bool `yaml:"fallbackErrorPage,omitempty" toml:"fallbackErrorPage"`
	// Tags are applied to every resource of the site stacks.
	Tags map[string]string `yaml:"tags" toml:"tags"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{}.WithDefaults()
}

// WithDefaults fills empty fields with their default values.
func (s Settings) WithDefaults() Settings {
	if s.IndexDocument == "" {
		s.IndexDocument = DefaultIndexDocument
	}
	if s.ErrorDocument == "" {
		s.ErrorDocument = DefaultErrorDocument
	}
	if s.MinimumTLSPolicy == "" {
		s.MinimumTLSPolicy = DefaultMinimumTLSPolicy
	}
	if s.PriceClass == "" {
		s.PriceClass = DefaultPriceClass
	}
	return s
}

// FallbackErrorPageOrDefault returns the value of FallbackErrorPage, defaulting to true if not set.
func (s Settings) FallbackErrorPageOrDefault() bool {
	if s.FallbackErrorPage == nil {
		return true
	}
	return *s.FallbackErrorPage
}
