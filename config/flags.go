package config

import (
	"flag"
	"fmt"
	"io"
)

// Invocation is everything the entry point needs: the site plus process switches.
type Invocation struct {
	Site      Site
	Preflight bool
	Verbose   bool
}

// ParseFlags overlays command line flags on base. Short flags match the historical
// `-d -c -a -r` interface; every short flag has a long alias.
func ParseFlags(args []string, base Site, output io.Writer) (Invocation, error) {
	inv := Invocation{Site: base}
	fs := flag.NewFlagSet("static-site", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	stringFlag(fs, &inv.Site.Domain, "site domain", "d", "domain")
	stringFlag(fs, &inv.Site.Contents, "site contents: local directory or s3://bucket/key.zip", "c", "contents")
	stringFlag(fs, &inv.Site.Account, "AWS account id", "a", "accountid", "account")
	stringFlag(fs, &inv.Site.Region, "main AWS region", "r", "region")
	stringFlag(fs, &inv.Site.Zone, "hosted zone name (defaults to the site domain)", "z", "zone")
	stringFlag(fs, &inv.Site.SettingsPath, "YAML or TOML site settings file", "s", "settings")
	fs.BoolVar(&inv.Preflight, "preflight", false, "check the hosted zone and bucket name against AWS before synthesis")
	fs.BoolVar(&inv.Verbose, "verbose", false, "development logging")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if fs.NArg() > 0 {
		return Invocation{}, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, fs.Args())
	}
	return inv, nil
}

func stringFlag(fs *flag.FlagSet, p *string, usage string, names ...string) {
	for _, name := range names {
		fs.StringVar(p, name, *p, usage)
	}
}

// Load resolves the invocation from the environment and the given arguments, then validates it.
func Load(args []string, output io.Writer) (Invocation, error) {
	base, err := LoadEnv()
	if err != nil {
		return Invocation{}, err
	}
	inv, err := ParseFlags(args, base, output)
	if err != nil {
		return Invocation{}, err
	}
	if err := inv.Site.Validate(); err != nil {
		return Invocation{}, err
	}
	return inv, nil
}
