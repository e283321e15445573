package config

// File represents the structure of the labbuddy.yaml configuration file.
// Every field is optional; empty values fall back to the built-in defaults.
// Durations are written in Go notation ("15s", "500ms").
type File struct {
	CacheDir            string `yaml:"cache_dir"`
	BaseURL             string `yaml:"base_url"`
	ViewBaseURL         string `yaml:"view_base_url"`
	AutocompleteBaseURL string `yaml:"autocomplete_base_url"`
	ProbeURL            string `yaml:"probe_url"`
	FetchTimeout        string `yaml:"fetch_timeout"`
	ProbeTimeout        string `yaml:"probe_timeout"`
	Cooldown            string `yaml:"cooldown"`
	SuggestionLimit     int    `yaml:"suggestion_limit"`
}
