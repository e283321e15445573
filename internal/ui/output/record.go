package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/ui/style"
)

// RenderRecord formats a chemical record for terminal display.
func RenderRecord(rec *domain.ChemicalRecord, fromCache bool) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %s", style.Flask, rec.Name)
	if rec.CID != 0 {
		title += style.Muted.Render(fmt.Sprintf("  (CID %d)", rec.CID))
	}
	b.WriteString(style.Title.Render(title))
	b.WriteString("\n\n")

	writeField(&b, "Formula", rec.Formula)
	writeField(&b, "CAS", rec.CAS)
	writeField(&b, "Mol. weight", quantity(rec.MolecularWeight, rec.MolecularWeightUnit))
	writeField(&b, "Density", quantity(rec.Density, rec.DensityUnit))
	writeField(&b, "IUPAC name", rec.IUPACName)
	writeField(&b, "SMILES", rec.SMILES)

	b.WriteString(style.FieldName.Render("Hazards"))
	if len(rec.Hazards) == 0 {
		b.WriteString(" " + style.Muted.Render("none recorded"))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		for i, statement := range rec.Hazards {
			b.WriteString(fmt.Sprintf("  %s %d. %s\n", style.HazardTag.Render(style.Hazard), i+1, statement))
		}
	}

	if rec.ImageURL != "" {
		writeField(&b, "Structure", rec.ImageURL)
	}

	if fromCache {
		b.WriteString("\n")
		b.WriteString(style.CacheTag.Render(style.Check + " served from local cache"))
		b.WriteString("\n")
	}

	return b.String()
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		value = domain.NotAvailable
	}
	b.WriteString(style.FieldName.Render(name))
	b.WriteString(" ")
	if value == domain.NotAvailable {
		b.WriteString(style.Muted.Render(value))
	} else {
		b.WriteString(value)
	}
	b.WriteString("\n")
}

// quantity renders an optional numeric value with its unit.
func quantity(value *float64, unit string) string {
	if value == nil {
		return domain.NotAvailable
	}
	s := strconv.FormatFloat(*value, 'g', -1, 64)
	if unit != "" {
		s += " " + unit
	}
	return s
}

// RenderSuggestions formats a suggestion list, one entry per line.
func RenderSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return style.Muted.Render("no suggestions") + "\n"
	}

	var b strings.Builder
	for _, s := range suggestions {
		b.WriteString(fmt.Sprintf("%s %s\n", style.Muted.Render(style.Dot), s))
	}
	return b.String()
}
