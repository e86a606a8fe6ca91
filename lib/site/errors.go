package site

import "errors"

var (
	// ErrContentsMissing is returned when the content path does not exist.
	ErrContentsMissing = errors.New("site contents missing")
	// ErrUnknownReference is returned when a descriptor refers to a dependency the plan does not hold.
	ErrUnknownReference = errors.New("unknown reference")
	// ErrCertificateRegion is returned for a certificate outside CertificateRegion.
	ErrCertificateRegion = errors.New("certificate must be in " + CertificateRegion)
)
