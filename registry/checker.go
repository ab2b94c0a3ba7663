// Package registry checks whether package names exist on their ecosystem's
// public registry.
package registry

import (
	"context"
	"net/http"
	"time"

	"github.com/ortelius/depscout/config"
	"github.com/ortelius/depscout/logging"
	"github.com/ortelius/depscout/model"
)

var logger = logging.Logger

// Options configures a Checker. Zero values fall back to the public
// registry endpoints and the default lookup timeout.
type Options struct {
	Timeout     time.Duration
	PyPIBaseURL string
	NPMBaseURL  string
}

// Checker performs one HTTP GET per package name against the ecosystem's
// public registry. Lookups are synchronous and never retried; failures
// degrade to an unknown verdict instead of aborting the run.
type Checker struct {
	client   *http.Client
	pypiBase string
	npmBase  string
}

// NewChecker creates a Checker with one shared HTTP client
func NewChecker(opts Options) *Checker {
	if opts.Timeout <= 0 {
		opts.Timeout = config.DefaultTimeout
	}
	if opts.PyPIBaseURL == "" {
		opts.PyPIBaseURL = config.DefaultPyPIBaseURL
	}
	if opts.NPMBaseURL == "" {
		opts.NPMBaseURL = config.DefaultNPMBaseURL
	}

	return &Checker{
		client:   &http.Client{Timeout: opts.Timeout},
		pypiBase: opts.PyPIBaseURL,
		npmBase:  opts.NPMBaseURL,
	}
}

// LookupURL returns the registry endpoint for the identity, or false when
// the ecosystem has no supported registry
func (c *Checker) LookupURL(id model.PackageIdentity) (string, bool) {
	switch id.Ecosystem {
	case model.EcosystemPyPI:
		return c.pypiBase + "/pypi/" + id.Name + "/json", true
	case model.EcosystemNPM:
		return c.npmBase + "/" + id.Name, true
	}
	return "", false
}

// Check resolves the identity's public-registry verdict with a single GET.
// 404 means the name is unclaimed, 200 means it exists publicly; any other
// status and any network failure degrade to unknown.
func (c *Checker) Check(ctx context.Context, id model.PackageIdentity) model.Verdict {
	url, ok := c.LookupURL(id)
	if !ok {
		return model.VerdictUnknown
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Sugar().Errorf("Failed to build request for %s: %v", id, err)
		return model.VerdictUnknown
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Sugar().Errorf("Network error when checking %s: %v", id, err)
		return model.VerdictUnknown
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return model.VerdictNotFoundPublicly
	case http.StatusOK:
		return model.VerdictExistsPublicly
	default:
		logger.Sugar().Warnf("Unexpected status %d for %s", resp.StatusCode, id)
		return model.VerdictUnknown
	}
}
