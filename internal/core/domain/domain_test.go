package domain_test

import (
	"testing"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Ethanol", want: "ethanol"},
		{name: "trims edges", input: "  acetone  ", want: "acetone"},
		{name: "collapses internal whitespace", input: "sodium \t  chloride", want: "sodium chloride"},
		{name: "tabs and newlines", input: "iron\n(III)\tchloride", want: "iron (iii) chloride"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \t\n ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NormalizeKey(tt.input)
			assert.Equal(t, tt.want, got)
			// Normalization must be idempotent.
			assert.Equal(t, got, domain.NormalizeKey(got))
		})
	}
}

func TestIsCASNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "64-17-5", want: true},
		{input: "7732-18-5", want: true},
		{input: "123456", want: false},
		{input: "64-17-55", want: false},
		{input: "64-17", want: false},
		{input: "64-17-5-1", want: false},
		{input: "64-1a-5", want: false},
		{input: "-17-5", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsCASNumber(tt.input))
		})
	}
}

func TestFindCASNumber(t *testing.T) {
	t.Run("first qualifying synonym wins", func(t *testing.T) {
		syns := []string{"ethanol", "ethyl alcohol", "64-17-5", "9005-27-0"}
		assert.Equal(t, "64-17-5", domain.FindCASNumber(syns))
	})

	t.Run("no qualifying synonym", func(t *testing.T) {
		syns := []string{"ethanol", "EtOH", "alcohol"}
		assert.Equal(t, domain.NotAvailable, domain.FindCASNumber(syns))
	})
}

func TestPendingQuery_Identity(t *testing.T) {
	a := domain.NewPendingQuery("Ethanol")
	b := domain.NewPendingQuery("  ethanol ")
	c := domain.NewPendingQuery("acetone")

	require.Equal(t, "ethanol", a.Key)
	assert.Equal(t, a.ID, b.ID, "identical normalized queries must share an identity")
	assert.NotEqual(t, a.ID, c.ID)
}

func TestChemicalRecord_FieldPresence(t *testing.T) {
	dens := 0.79
	rec := &domain.ChemicalRecord{
		Name:      "Ethanol",
		CAS:       "64-17-5",
		IUPACName: domain.NotAvailable,
		Density:   &dens,
	}

	assert.Equal(t, "ethanol", rec.Key())
	assert.True(t, rec.HasCAS())
	assert.False(t, rec.HasIUPAC())
	assert.False(t, rec.HasSMILES())
	assert.True(t, rec.HasDensity())
}
