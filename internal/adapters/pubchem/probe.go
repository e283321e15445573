package pubchem

import (
	"context"
	"net/http"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
)

// ReachabilityProbe implements ports.Probe with a short bounded GET against
// the site root. Any failure, including its own timeout, reads as offline.
type ReachabilityProbe struct {
	url        string
	httpClient *http.Client
}

// NewProbe creates a reachability probe from the configured endpoint.
func NewProbe(settings *domain.Settings) *ReachabilityProbe {
	return &ReachabilityProbe{
		url: settings.ProbeURL,
		httpClient: &http.Client{
			Timeout: settings.ProbeTimeout,
		},
	}
}

// Online reports whether the remote database looks reachable.
func (p *ReachabilityProbe) Online(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}
