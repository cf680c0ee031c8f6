/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/heatops/heatctl/internal/config"
	"github.com/heatops/heatctl/internal/identity"
	"github.com/heatops/heatctl/internal/orchestration"
	"github.com/heatops/heatctl/internal/resolve"
	"gopkg.in/yaml.v3"
)

var (
	// operations can be injected for testing
	operations orchestration.Operations

	// templateResolver can be injected for testing
	templateResolver resolve.Resolver
)

// getOperations returns the orchestration client, creating a default one
// bound to the resolved configuration if none is set
func getOperations() orchestration.Operations {
	if operations != nil {
		return operations
	}

	operations = orchestration.NewRESTClient(orchestration.Config{
		Endpoint: cfg.Endpoint(),
		Region:   cfg.Region,
		Token:    cfg.Token,
		Insecure: cfg.Insecure,
	}, newTokenProvider())
	return operations
}

// SetOperations allows injection of an orchestration client (for testing)
func SetOperations(o orchestration.Operations) {
	operations = o
}

// getTemplateResolver returns the template resolver, creating a default one
// if none is set
func getTemplateResolver() resolve.Resolver {
	if templateResolver != nil {
		return templateResolver
	}

	fetcher := resolve.NewSwiftFetcher(newTokenProvider(), cfg.Insecure)
	templateResolver = resolve.NewSourceResolver(cfg, fetcher)
	return templateResolver
}

// SetTemplateResolver allows injection of a template resolver (for testing)
func SetTemplateResolver(r resolve.Resolver) {
	templateResolver = r
}

// newTokenProvider builds a keystone token client from the configured
// credentials, or nil when no keystone authentication is wanted
func newTokenProvider() identity.TokenProvider {
	if cfg.AuthStrategy != config.StrategyKeystone {
		return nil
	}

	return identity.NewKeystoneClient(identity.Credentials{
		AuthURL:  cfg.AuthURL,
		Username: cfg.Username,
		Password: cfg.Password,
		Tenant:   cfg.Tenant,
	}, cfg.Insecure)
}

// printResult renders a result according to the configured output format.
// The text callback supplies the human-readable rendering.
func printResult(result any, text func() string) error {
	switch cfg.Output {
	case config.OutputJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result as JSON: %w", err)
		}
		fmt.Println(string(data))
	case config.OutputYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result as YAML: %w", err)
		}
		fmt.Print(string(data))
	default:
		fmt.Print(text())
	}
	return nil
}
