/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Authentication strategies understood by the client
const (
	StrategyKeystone = "keystone"
	StrategyNoauth   = "noauth"
)

// DefaultPort is the orchestration service port used when no --url is given
const DefaultPort = 8000

// DefaultTimeout is the stack creation timeout in minutes
const DefaultTimeout = 60

// ConfigurationError indicates missing or contradictory configuration.
// It is always raised before any network call is attempted.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// Config holds the fully resolved per-invocation configuration. It is built
// once at startup from flags, environment variables and the optional config
// file, and is treated as immutable after Init.
type Config struct {
	// Endpoint selection
	Host     string
	Port     int
	URL      string
	UseTLS   bool
	Insecure bool

	// Credentials
	Username     string
	Password     string
	Tenant       string
	AuthURL      string
	AuthStrategy string
	Token        string
	Region       string

	// Template source selection (first non-empty wins, in this order)
	TemplateFile   string
	TemplateURL    string
	TemplateObject string

	// Stack request options
	Timeout        int
	RawParameters  string
	Parameters     map[string]string
	EnableRollback bool

	// Behaviour
	AssumeYes bool
	Verbose   bool
	Debug     bool
	Output    OutputFormat
}

// New returns a Config with defaults applied
func New() *Config {
	return &Config{
		Host:    "localhost",
		Port:    DefaultPort,
		Timeout: DefaultTimeout,
		Output:  OutputText,
	}
}

// AddFlags binds all global flags onto the given command
func (c *Config) AddFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()

	f.BoolVarP(&c.Verbose, "verbose", "v", false, "verbose output")
	f.BoolVarP(&c.Debug, "debug", "d", false, "debug output (implies verbose)")
	f.BoolVarP(&c.AssumeYes, "yes", "y", false, "answer yes to confirmation prompts")

	f.StringVarP(&c.Host, "host", "H", "localhost", "orchestration service host")
	f.IntVarP(&c.Port, "port", "p", DefaultPort, "orchestration service port")
	f.StringVarP(&c.URL, "url", "U", "", "orchestration service endpoint URL (overrides --host and --port)")
	f.BoolVarP(&c.Insecure, "insecure", "k", false, "skip TLS certificate verification")

	f.StringVar(&c.Token, "token", "", "authentication token (used instead of username/password)")
	f.StringVarP(&c.Username, "username", "u", "", "account username (defaults to OS_USERNAME)")
	f.StringVar(&c.Password, "password", "", "account password (defaults to OS_PASSWORD)")
	f.StringVarP(&c.Tenant, "tenant", "t", "", "tenant name (defaults to OS_TENANT_NAME)")
	f.StringVar(&c.AuthURL, "auth-url", "", "identity service endpoint (defaults to OS_AUTH_URL)")
	f.StringVar(&c.AuthStrategy, "auth-strategy", "", "authentication strategy: keystone or noauth (defaults to OS_AUTH_STRATEGY)")
	f.StringVarP(&c.Region, "region", "r", "", "region for multi-region endpoints")

	f.StringVarP(&c.TemplateFile, "template-file", "f", "", "path to a local template file")
	f.StringVar(&c.TemplateURL, "template-url", "", "URL of a remote template, passed through to the service")
	f.StringVar(&c.TemplateObject, "template-object", "", "object store URL of a template (requires keystone authentication)")

	f.IntVar(&c.Timeout, "timeout", DefaultTimeout, "stack creation timeout in minutes")
	f.StringVar(&c.RawParameters, "parameters", "", "stack parameters as 'key=value;key=value'")
	f.BoolVar(&c.EnableRollback, "enable-rollback", false, "roll the stack back automatically on failure")

	f.VarP(&c.Output, "output", "o", "output format (text|json|yaml)")
}

// Init resolves environment and config-file fallbacks, derives the endpoint,
// parses stack parameters and validates the credentials. It must succeed
// before any command handler runs.
func (c *Config) Init() error {
	c.applyFallbacks()

	if err := c.resolveEndpoint(); err != nil {
		return err
	}

	parameters, err := ParseParameters(c.RawParameters)
	if err != nil {
		return err
	}
	c.Parameters = parameters

	return c.validateAuth()
}

// applyFallbacks fills unset credential fields from the environment and the
// optional ~/.heatctl/config.yaml. Flags always win.
func (c *Config) applyFallbacks() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".heatctl"))
	}
	// The config file is optional; credentials may come from flags or env.
	_ = viper.ReadInConfig()

	_ = viper.BindEnv("username", "OS_USERNAME")
	_ = viper.BindEnv("password", "OS_PASSWORD")
	_ = viper.BindEnv("tenant", "OS_TENANT_NAME")
	_ = viper.BindEnv("auth_url", "OS_AUTH_URL")
	_ = viper.BindEnv("auth_strategy", "OS_AUTH_STRATEGY")

	if c.Username == "" {
		c.Username = viper.GetString("username")
	}
	if c.Password == "" {
		c.Password = viper.GetString("password")
	}
	if c.Tenant == "" {
		c.Tenant = viper.GetString("tenant")
	}
	if c.AuthURL == "" {
		c.AuthURL = viper.GetString("auth_url")
	}
	if c.AuthStrategy == "" {
		c.AuthStrategy = viper.GetString("auth_strategy")
	}
	if c.AuthStrategy == "" {
		c.AuthStrategy = StrategyNoauth
	}
}

// resolveEndpoint derives host, port and TLS use. TLS use always rebinds to
// the freshly parsed URL, never to state left over from earlier parsing.
func (c *Config) resolveEndpoint() error {
	if c.URL == "" {
		c.UseTLS = false
		return nil
	}

	u, err := url.Parse(c.URL)
	if err != nil || u.Host == "" {
		return &ConfigurationError{Reason: fmt.Sprintf("invalid endpoint URL %q", c.URL)}
	}

	c.UseTLS = u.Scheme == "https"
	c.Host = u.Hostname()

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return &ConfigurationError{Reason: fmt.Sprintf("invalid port in endpoint URL %q", c.URL)}
		}
		c.Port = port
	} else if c.UseTLS {
		c.Port = 443
	} else {
		c.Port = 80
	}

	return nil
}

// validateAuth enforces that exactly one authentication mode is usable:
// an explicit token, or username and password credentials.
func (c *Config) validateAuth() error {
	if c.Token != "" {
		return nil
	}
	if c.Username != "" && c.Password != "" {
		return nil
	}
	return &ConfigurationError{
		Reason: "either --token or both a username and a password " +
			"(--username/--password or OS_USERNAME/OS_PASSWORD) are required",
	}
}

// Endpoint returns the base URL of the orchestration service
func (c *Config) Endpoint() string {
	if c.URL != "" {
		return strings.TrimRight(c.URL, "/")
	}
	return fmt.Sprintf("http://%s:%d/v1", c.Host, c.Port)
}

// ParseParameters parses a raw 'key=value;key=value' string into a map
func ParseParameters(raw string) (map[string]string, error) {
	parameters := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return parameters, nil
	}

	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("malformed parameter %q, expected key=value", pair)}
		}
		parameters[key] = value
	}

	return parameters, nil
}
