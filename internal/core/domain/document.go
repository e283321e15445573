package domain

// RecordDocument is the full property document for one compound as returned
// by the upstream record endpoint. Sections are heterogeneously shaped:
// different compounds populate different optional branches, so every field
// except the heading is optional.
type RecordDocument struct {
	Title    string    `json:"RecordTitle"`
	Sections []Section `json:"Section"`
}

// Section is one node of the nested property tree.
type Section struct {
	TOCHeading  string        `json:"TOCHeading"`
	Sections    []Section     `json:"Section,omitempty"`
	Information []Information `json:"Information,omitempty"`
}

// Information is an informational leaf carrying a typed value.
type Information struct {
	Name  string `json:"Name,omitempty"`
	Value Value  `json:"Value"`
}

// Value holds one of three alternative value shapes. When more than one is
// present, consumers apply a fixed precedence (list, single string, markup).
type Value struct {
	StringValueList  []string           `json:"StringValueList,omitempty"`
	StringValue      string             `json:"StringValue,omitempty"`
	StringWithMarkup []StringWithMarkup `json:"StringWithMarkup,omitempty"`
}

// StringWithMarkup is a string annotated with markup entries.
type StringWithMarkup struct {
	String string   `json:"String"`
	Markup []Markup `json:"Markup,omitempty"`
}

// Markup is one annotation on a markup string. Icon-type entries carry the
// pictogram URL in URL and a human label in Extra.
type Markup struct {
	Type  string `json:"Type,omitempty"`
	URL   string `json:"URL,omitempty"`
	Extra string `json:"Extra,omitempty"`
}

// Pictogram is a hazard pictogram reference extracted from a GHS section.
type Pictogram struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}
