package config

import (
	"fmt"
	"time"

	"main/utils"

	"github.com/go-playground/validator/v10"
)

// Settings holds everything the bridge reads from the environment. It is
// built once at startup and passed into components at construction time;
// nothing reads the environment after Load returns.
type Settings struct {
	BaseURL     string `validate:"required,url"`
	AccountID   string `validate:"required"`
	AccessToken string
	Flavor      Flavor `validate:"required"`

	RequestTimeout time.Duration `validate:"gt=0"`

	DefaultPageSize   int `validate:"gt=0"`
	MaxPageSize       int `validate:"gt=0"`
	UpstreamPageLimit int `validate:"gt=0"`
	MaxPages          int `validate:"gt=0"`

	CacheTTL time.Duration `validate:"gte=0"`

	ExcludeReplies bool
	ExcludeReblogs bool

	Port string `validate:"required"`
}

// Load reads settings from the environment and validates them. Defaults
// match the upstream API's limits (40 statuses per page is the Mastodon
// hard maximum).
func Load() (*Settings, error) {
	flavor, err := ParseFlavor(utils.GetEnvAsString("UPSTREAM_FLAVOR", string(FlavorMastodon)))
	if err != nil {
		return nil, err
	}

	s := &Settings{
		BaseURL:           utils.GetEnvAsString("MASTODON_BASE_URL", ""),
		AccountID:         utils.GetEnvAsString("MASTODON_ACCOUNT_ID", ""),
		AccessToken:       utils.GetEnvAsString("MASTODON_ACCESS_TOKEN", ""),
		Flavor:            flavor,
		RequestTimeout:    utils.GetEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),
		DefaultPageSize:   utils.GetEnvAsInt("DEFAULT_PAGE_SIZE", 50),
		MaxPageSize:       utils.GetEnvAsInt("MAX_PAGE_SIZE", 100),
		UpstreamPageLimit: utils.GetEnvAsInt("UPSTREAM_PAGE_LIMIT", 40),
		MaxPages:          utils.GetEnvAsInt("MAX_PAGES", 5),
		CacheTTL:          utils.GetEnvAsDuration("ACCOUNT_CACHE_TTL", 5*time.Minute),
		ExcludeReplies:    utils.GetEnvAsBool("EXCLUDE_REPLIES", true),
		ExcludeReblogs:    utils.GetEnvAsBool("EXCLUDE_REBLOGS", true),
		Port:              utils.GetEnvAsString("PORT", "8080"),
	}

	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return s, nil
}
