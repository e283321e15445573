package domain

import "time"

// Settings holds the runtime configuration of the application. Values come
// from built-in defaults overlaid with an optional labbuddy.yaml.
type Settings struct {
	// CacheDir is the directory holding the cache data and signature files.
	CacheDir string

	// BaseURL is the root of the compound REST API.
	BaseURL string

	// ViewBaseURL is the root of the full-record (property tree) API.
	ViewBaseURL string

	// AutocompleteBaseURL is the root of the autocomplete API.
	AutocompleteBaseURL string

	// ProbeURL is the endpoint used by the reachability probe.
	ProbeURL string

	// FetchTimeout bounds every remote record fetch.
	FetchTimeout time.Duration

	// ProbeTimeout bounds the reachability probe.
	ProbeTimeout time.Duration

	// Cooldown is the minimum interval between completed resolutions.
	Cooldown time.Duration

	// SuggestionLimit caps cache-served suggestions.
	SuggestionLimit int
}

// DefaultSettings returns the built-in configuration, pointed at PubChem.
func DefaultSettings() *Settings {
	return &Settings{
		CacheDir:            DefaultCacheDir(),
		BaseURL:             "https://pubchem.ncbi.nlm.nih.gov/rest/pug",
		ViewBaseURL:         "https://pubchem.ncbi.nlm.nih.gov/rest/pug_view",
		AutocompleteBaseURL: "https://pubchem.ncbi.nlm.nih.gov/rest/autocomplete",
		ProbeURL:            "https://pubchem.ncbi.nlm.nih.gov",
		FetchTimeout:        15 * time.Second,
		ProbeTimeout:        2 * time.Second,
		Cooldown:            time.Second,
		SuggestionLimit:     6,
	}
}
