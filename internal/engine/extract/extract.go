// Package extract pulls individual chemical properties out of the nested
// section tree returned by the PUG-View full-record endpoint. Every function
// is total: a missing branch yields the "Not available" sentinel (or a false
// ok), never an error. The tree is variably shaped across compounds, so each
// extractor walks only the branches it knows about.
package extract

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
)

const (
	maxPictograms       = 3
	maxHazardStatements = 5
	defaultTempCelsius  = 25
)

var (
	decimalRe    = regexp.MustCompile(`[\d.]+`)
	fahrenheitRe = regexp.MustCompile(`([\d.]+)\s*°\s*f`)
	celsiusRe    = regexp.MustCompile(`([\d.]+)\s*°\s*c`)
)

// IUPACName returns the computed IUPAC name, following the fixed path
// Names and Identifiers → Computed Descriptors → IUPAC Name.
func IUPACName(sections []domain.Section) string {
	return computedDescriptor(sections, "IUPAC Name")
}

// SMILES returns the canonical SMILES string, same path shape as IUPACName
// with a SMILES leaf.
func SMILES(sections []domain.Section) string {
	return computedDescriptor(sections, "SMILES")
}

func computedDescriptor(sections []domain.Section, leaf string) string {
	for _, section := range sections {
		if section.TOCHeading != "Names and Identifiers" {
			continue
		}
		for _, sub := range section.Sections {
			if sub.TOCHeading != "Computed Descriptors" {
				continue
			}
			for _, prop := range sub.Sections {
				if prop.TOCHeading != leaf {
					continue
				}
				for _, info := range prop.Information {
					if len(info.Value.StringWithMarkup) > 0 {
						if s := info.Value.StringWithMarkup[0].String; s != "" {
							return s
						}
					}
				}
			}
		}
	}
	return domain.NotAvailable
}

// Density returns the first experimental density along with its normalized
// unit string "g/mL @ {C} °C". ok is false when no density heading carries a
// parseable value. Observation temperature defaults to 25 °C; a Fahrenheit
// marker in the source text is converted, a Celsius marker is rounded.
func Density(sections []domain.Section) (value float64, unit string, ok bool) {
	for _, section := range sections {
		if section.TOCHeading != "Chemical and Physical Properties" {
			continue
		}
		for _, sub := range section.Sections {
			if sub.TOCHeading != "Experimental Properties" {
				continue
			}
			for _, prop := range sub.Sections {
				if !strings.Contains(strings.ToLower(prop.TOCHeading), "density") {
					continue
				}
				for _, info := range prop.Information {
					text := valueText(info.Value)
					if text == "" {
						continue
					}
					num := decimalRe.FindString(text)
					if num == "" {
						continue
					}
					d, err := strconv.ParseFloat(num, 64)
					if err != nil {
						continue
					}
					return d, fmt.Sprintf("g/mL @ %d °C", observationTemp(text)), true
				}
			}
		}
	}
	return 0, "", false
}

// valueText picks the display text of a leaf value, preferring the first
// markup string over the plain string form.
func valueText(v domain.Value) string {
	if len(v.StringWithMarkup) > 0 {
		return v.StringWithMarkup[0].String
	}
	return v.StringValue
}

func observationTemp(text string) int {
	lower := strings.ToLower(text)
	if m := fahrenheitRe.FindStringSubmatch(lower); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(math.Round((f - 32) * 5 / 9))
		}
	} else if m := celsiusRe.FindStringSubmatch(lower); m != nil {
		if c, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(math.Round(c))
		}
	}
	return defaultTempCelsius
}

// GHS collects hazard pictograms and statements from the first section whose
// heading contains "GHS Classification", searched depth-first across the
// whole tree. Pictograms come from icon markup entries that carry a URL,
// capped at 3 in order of appearance. Statements are capped at 5 per leaf
// value shape precedence: list of strings, single string, then markup list.
func GHS(sections []domain.Section) ([]domain.Pictogram, []string) {
	ghs := findGHSSection(sections)
	if ghs == nil {
		return nil, nil
	}

	var pictograms []domain.Pictogram
	var statements []string
	for _, info := range ghs.Information {
		switch {
		case info.Name == "Pictogram(s)":
			pictograms = appendPictograms(pictograms, info.Value)
		case strings.Contains(info.Name, "GHS Hazard Statement") || info.Name == "Hazard Statement(s)":
			statements = appendStatements(statements, info.Value)
		}
	}
	return pictograms, statements
}

func findGHSSection(sections []domain.Section) *domain.Section {
	for i := range sections {
		if strings.Contains(sections[i].TOCHeading, "GHS Classification") {
			return &sections[i]
		}
		if found := findGHSSection(sections[i].Sections); found != nil {
			return found
		}
	}
	return nil
}

func appendPictograms(pictograms []domain.Pictogram, v domain.Value) []domain.Pictogram {
	for _, item := range v.StringWithMarkup {
		for _, markup := range item.Markup {
			if len(pictograms) >= maxPictograms {
				return pictograms
			}
			if markup.Type == "Icon" && markup.URL != "" {
				pictograms = append(pictograms, domain.Pictogram{
					URL:   markup.URL,
					Label: markup.Extra,
				})
			}
		}
	}
	return pictograms
}

func appendStatements(statements []string, v domain.Value) []string {
	switch {
	case len(v.StringValueList) > 0:
		for _, s := range v.StringValueList {
			if len(statements) >= maxHazardStatements {
				return statements
			}
			statements = append(statements, s)
		}
	case v.StringValue != "":
		if len(statements) < maxHazardStatements {
			statements = append(statements, v.StringValue)
		}
	default:
		for _, item := range v.StringWithMarkup {
			if len(statements) >= maxHazardStatements {
				return statements
			}
			if item.String != "" {
				statements = append(statements, item.String)
			}
		}
	}
	return statements
}
