package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// cdkDefaults holds the variables the CDK CLI exports for the active profile.
// They are used only when the explicit CDK_DEPLOY_* pair is incomplete.
type cdkDefaults struct {
	Account string `env:"CDK_DEFAULT_ACCOUNT"`
	Region  string `env:"CDK_DEFAULT_REGION"`
}

// LoadEnv reads the site configuration from the environment. The result is not validated,
// flags may still complete it.
func LoadEnv() (Site, error) {
	site, err := env.ParseAs[Site]()
	if err != nil {
		return Site{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// Same precedence as the CDK CLI: CDK_DEPLOY_* as a pair, otherwise CDK_DEFAULT_*.
	if site.Account == "" || site.Region == "" {
		defaults, err := env.ParseAs[cdkDefaults]()
		if err != nil {
			return Site{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		site.Account = defaults.Account
		site.Region = defaults.Region
	}

	return site, nil
}
