/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/heatops/heatctl/internal/config"
)

// Source is a resolved template: either inline content read locally, or a
// URL reference passed through to the orchestration service unfetched.
// Exactly one field is non-empty.
type Source struct {
	Body string
	URL  string
}

// UnavailableError indicates that no usable template could be produced.
// Handlers abort before any orchestration call when they see it.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	return "template unavailable: " + e.Reason
}

// Resolver produces the template payload for commands that need one
type Resolver interface {
	Resolve(ctx context.Context) (*Source, error)
}

// SourceResolver implements Resolver over the three configured template
// sources, consulted in priority order: file, then URL, then object store.
type SourceResolver struct {
	file       string
	url        string
	object     string
	strategy   string
	parameters map[string]string
	fetcher    ObjectFetcher
}

// Ensure that SourceResolver implements Resolver
var _ Resolver = (*SourceResolver)(nil)

// NewSourceResolver creates a resolver for the configured template sources
func NewSourceResolver(cfg *config.Config, fetcher ObjectFetcher) *SourceResolver {
	return &SourceResolver{
		file:       cfg.TemplateFile,
		url:        cfg.TemplateURL,
		object:     cfg.TemplateObject,
		strategy:   cfg.AuthStrategy,
		parameters: cfg.Parameters,
		fetcher:    fetcher,
	}
}

// Resolve returns the first available template source. Local files are
// rendered with the stack parameters as template variables; URLs pass
// through as references; object-store templates are fetched with a
// freshly acquired token.
func (r *SourceResolver) Resolve(ctx context.Context) (*Source, error) {
	switch {
	case r.file != "":
		content, err := os.ReadFile(r.file)
		if err != nil {
			return nil, &UnavailableError{Reason: fmt.Sprintf("cannot read template file %s: %v", r.file, err)}
		}

		body, err := Process(string(content), r.parameters)
		if err != nil {
			return nil, &UnavailableError{Reason: fmt.Sprintf("cannot render template file %s: %v", r.file, err)}
		}
		return &Source{Body: body}, nil

	case r.url != "":
		return &Source{URL: r.url}, nil

	case r.object != "":
		if r.strategy != config.StrategyKeystone {
			log.WithField("object", r.object).Error("object store templates require the keystone auth strategy")
			return nil, &UnavailableError{Reason: "object store templates require the keystone auth strategy"}
		}

		body, err := r.fetcher.Fetch(ctx, r.object)
		if err != nil {
			return nil, &UnavailableError{Reason: err.Error()}
		}
		return &Source{Body: body}, nil
	}

	return nil, &UnavailableError{Reason: "no template source configured (set --template-file, --template-url or --template-object)"}
}
