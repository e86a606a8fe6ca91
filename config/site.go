package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned when the site configuration fails validation.
// It is always detected before any construct is created.
var ErrInvalidConfig = errors.New("invalid site configuration")

// Site is the immutable input of the site stack builder.
// The zero value is not valid; use LoadEnv, ParseFlags or a literal followed by Validate.
type Site struct {
	// Domain is the site FQDN. It doubles as the bucket name, so it must satisfy S3 naming rules.
	Domain string `env:"SITE_DOMAIN" validate:"required,fqdn,lowercase,max=63"`
	// Zone is the hosted zone the site lives in. Empty means Domain itself.
	Zone string `env:"SITE_ZONE" validate:"omitempty,fqdn,lowercase"`
	// Contents is a local directory or an s3://bucket/key.zip locator.
	Contents string `env:"SITE_CONTENTS" validate:"required"`
	Account  string `env:"CDK_DEPLOY_ACCOUNT" validate:"required,len=12,numeric"`
	Region   string `env:"CDK_DEPLOY_REGION" validate:"required,awsregion"`
	// SettingsPath optionally points at a YAML or TOML settings file.
	SettingsPath string `env:"SITE_SETTINGS"`
}

// ZoneName returns the hosted zone to look up for the site.
func (s Site) ZoneName() string {
	if s.Zone == "" {
		return s.Domain
	}
	return s.Zone
}

// SiteURL is the public URL of the site.
func (s Site) SiteURL() string {
	return "https://" + s.Domain
}

var awsRegionPattern = regexp.MustCompile(`^[a-z]{2}(-gov|-iso[a-z]?)?-[a-z]+-\d$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("awsregion", func(fl validator.FieldLevel) bool {
		return awsRegionPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(siteStructLevel, Site{})
	return v
}

func siteStructLevel(sl validator.StructLevel) {
	s := sl.Current().Interface().(Site)
	if strings.HasSuffix(s.Domain, ".") {
		sl.ReportError(s.Domain, "Domain", "Domain", "notrailingdot", "")
	}
	if s.Zone != "" && s.Zone != s.Domain && !strings.HasSuffix(s.Domain, "."+s.Zone) {
		sl.ReportError(s.Zone, "Zone", "Zone", "parentzone", s.Domain)
	}
}

// Validate checks the configuration and returns an error wrapping ErrInvalidConfig
// that lists every failing field.
func (s Site) Validate() error {
	return Struct(s)
}

// Struct validates any configuration struct with the package validator
// and normalizes the error into ErrInvalidConfig.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "parentzone":
		return fmt.Sprintf("%s %q does not contain domain %q", fe.Field(), fe.Value(), fe.Param())
	case "notrailingdot":
		return fmt.Sprintf("%s %q must not end with a dot", fe.Field(), fe.Value())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s %q failed %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s %q failed %s", fe.Field(), fe.Value(), fe.Tag())
	}
}
