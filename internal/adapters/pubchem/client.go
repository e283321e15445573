// Package pubchem implements the RecordFetcher and Probe ports against the
// PubChem PUG REST, PUG-View, and autocomplete APIs.
package pubchem

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.trai.ch/zerr"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
)

const (
	formulaLabel     = "Molecular Formula"
	autocompleteCap  = 10
	maxImageBytes    = 4 << 20
	maxResponseBytes = 16 << 20
)

// Client implements ports.RecordFetcher. Endpoints come from Settings so
// tests can point the client at a local server.
type Client struct {
	base       string
	viewBase   string
	autoBase   string
	siteBase   string
	httpClient *http.Client
}

// NewClient creates a fetcher from the configured endpoints and timeout.
func NewClient(settings *domain.Settings) *Client {
	return &Client{
		base:     strings.TrimRight(settings.BaseURL, "/"),
		viewBase: strings.TrimRight(settings.ViewBaseURL, "/"),
		autoBase: strings.TrimRight(settings.AutocompleteBaseURL, "/"),
		siteBase: strings.TrimRight(settings.ProbeURL, "/"),
		httpClient: &http.Client{
			Timeout: settings.FetchTimeout,
		},
	}
}

// LookupByName resolves a chemical name to its compound identity, including
// the molecular formula carried on the compound document.
func (c *Client) LookupByName(ctx context.Context, name string) (*domain.Compound, error) {
	endpoint := fmt.Sprintf("%s/compound/name/%s/JSON", c.base, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	req.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	defer httpResp.Body.Close()

	switch {
	case httpResp.StatusCode == http.StatusNotFound:
		return nil, zerr.With(zerr.Wrap(domain.ErrCompoundNotFound, ""), "name", name)
	case httpResp.StatusCode != http.StatusOK:
		return nil, zerr.With(zerr.Wrap(domain.ErrFetchFailed, ""), "status", httpResp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}

	var resp compoundLookupResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchParseFailed.Error())
	}
	if len(resp.PCCompounds) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrCompoundNotFound, ""), "name", name)
	}

	compound := &domain.Compound{
		CID:     resp.PCCompounds[0].ID.ID.CID,
		Formula: domain.NotAvailable,
	}
	for _, prop := range resp.PCCompounds[0].Props {
		if prop.URN.Label == formulaLabel && prop.Value.SVal != "" {
			compound.Formula = prop.Value.SVal
			break
		}
	}
	return compound, nil
}

// Properties fetches the named computed properties for a compound and
// returns them stringified, keyed by property name.
func (c *Client) Properties(ctx context.Context, cid int64, properties []string) (map[string]string, error) {
	endpoint := fmt.Sprintf("%s/compound/cid/%d/property/%s/JSON", c.base, cid, strings.Join(properties, ","))

	var resp propertyResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if len(resp.PropertyTable.Properties) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrFetchParseFailed, ""), "cid", cid)
	}

	out := make(map[string]string, len(resp.PropertyTable.Properties[0]))
	for key, value := range resp.PropertyTable.Properties[0] {
		if key == "CID" {
			continue
		}
		out[key] = fmt.Sprintf("%v", value)
	}
	return out, nil
}

// Synonyms fetches the synonym list for a compound.
func (c *Client) Synonyms(ctx context.Context, cid int64) ([]string, error) {
	endpoint := fmt.Sprintf("%s/compound/cid/%d/synonyms/JSON", c.base, cid)

	var resp synonymsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if len(resp.InformationList.Information) == 0 {
		return nil, nil
	}
	return resp.InformationList.Information[0].Synonym, nil
}

// FullRecord fetches the nested property document for a compound.
func (c *Client) FullRecord(ctx context.Context, cid int64) (*domain.RecordDocument, error) {
	endpoint := fmt.Sprintf("%s/data/compound/%d/JSON", c.viewBase, cid)

	var resp fullRecordResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp.Record, nil
}

// StructureImageURL returns the canonical 2D structure image URL.
func (c *Client) StructureImageURL(cid int64) string {
	return fmt.Sprintf("%s/image/imgsrv.fcgi?cid=%d&t=l", c.siteBase, cid)
}

// StructureImage fetches the 2D structure image bytes.
func (c *Client) StructureImage(ctx context.Context, cid int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.StructureImageURL(cid), nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.Wrap(domain.ErrFetchFailed, ""), "status", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	return data, nil
}

// Autocomplete fetches name completions for a prefix, capped upstream.
func (c *Client) Autocomplete(ctx context.Context, prefix string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/compound/%s/json?limit=%d", c.autoBase, url.PathEscape(prefix), autocompleteCap)

	var resp autocompleteResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.DictionaryTerms.Compound, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		failed := zerr.With(zerr.Wrap(domain.ErrFetchFailed, ""), "status", resp.StatusCode)
		return zerr.With(failed, "url", endpoint)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	if err := json.Unmarshal(data, out); err != nil {
		return zerr.Wrap(err, domain.ErrFetchParseFailed.Error())
	}
	return nil
}
