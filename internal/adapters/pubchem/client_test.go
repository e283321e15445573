package pubchem_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MdAbusufiyan/lab-buddy/internal/adapters/pubchem"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
)

func testSettings(serverURL string) *domain.Settings {
	s := domain.DefaultSettings()
	s.BaseURL = serverURL + "/rest/pug"
	s.ViewBaseURL = serverURL + "/rest/pug_view"
	s.AutocompleteBaseURL = serverURL + "/rest/autocomplete"
	s.ProbeURL = serverURL
	s.FetchTimeout = 5 * time.Second
	s.ProbeTimeout = time.Second
	return s
}

func TestClient_LookupByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/pug/compound/name/ethanol/JSON", r.URL.Path)
		w.Write([]byte(`{
			"PC_Compounds": [{
				"id": {"id": {"cid": 702}},
				"props": [
					{"urn": {"label": "IUPAC Name"}, "value": {"sval": "ethanol"}},
					{"urn": {"label": "Molecular Formula"}, "value": {"sval": "C2H6O"}}
				]
			}]
		}`))
	}))
	defer server.Close()

	client := pubchem.NewClient(testSettings(server.URL))
	compound, err := client.LookupByName(context.Background(), "ethanol")
	require.NoError(t, err)
	assert.Equal(t, int64(702), compound.CID)
	assert.Equal(t, "C2H6O", compound.Formula)
}

func TestClient_LookupByName_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := pubchem.NewClient(testSettings(server.URL))
	_, err := client.LookupByName(context.Background(), "nosuchcompound")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCompoundNotFound)
}

func TestClient_LookupByName_MissingFormula(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"PC_Compounds": [{"id": {"id": {"cid": 702}}, "props": []}]}`))
	}))
	defer server.Close()

	client := pubchem.NewClient(testSettings(server.URL))
	compound, err := client.LookupByName(context.Background(), "ethanol")
	require.NoError(t, err)
	assert.Equal(t, domain.NotAvailable, compound.Formula)
}

func TestClient_Properties(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/pug/compound/cid/702/property/MolecularWeight/JSON", r.URL.Path)
		w.Write([]byte(`{"PropertyTable": {"Properties": [{"CID": 702, "MolecularWeight": "46.07"}]}}`))
	}))
	defer server.Close()

	client := pubchem.NewClient(testSettings(server.URL))
	props, err := client.Properties(context.Background(), 702, []string{"MolecularWeight"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"MolecularWeight": "46.07"}, props)
}

func TestClient_Synonyms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/pug/compound/cid/702/synonyms/JSON", r.URL.Path)
		w.Write([]byte(`{"InformationList": {"Information": [{"Synonym": ["ethanol", "64-17-5", "ethyl alcohol"]}]}}`))
	}))
	defer server.Close()

	client := pubchem.NewClient(testSettings(server.URL))
	synonyms, err := client.Synonyms(context.Background(), 702)
	require.NoError(t, err)
	assert.Equal(t, []string{"ethanol", "64-17-5", "ethyl alcohol"}, synonyms)
}

func TestClient_FullRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/pug_view/data/compound/702/JSON", r.URL.Path)
		w.Write([]byte(`{
			"Record": {
				"RecordTitle": "Ethanol",
				"Section": [{
					"TOCHeading": "Names and Identifiers",
					"Section": [{
						"TOCHeading": "Computed Descriptors",
						"Section": [{
							"TOCHeading": "IUPAC Name",
							"Information": [{"Value": {"StringWithMarkup": [{"String": "ethanol"}]}}]
						}]
					}]
				}]
			}
		}`))
	}))
	defer server.Close()

	client := pubchem.NewClient(testSettings(server.URL))
	doc, err := client.FullRecord(context.Background(), 702)
	require.NoError(t, err)
	assert.Equal(t, "Ethanol", doc.Title)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Names and Identifiers", doc.Sections[0].TOCHeading)
}

func TestClient_Autocomplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/autocomplete/compound/eth/json", r.URL.Path)
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"dictionary_terms": {"compound": ["ethanol", "ethyl acetate"]}}`))
	}))
	defer server.Close()

	client := pubchem.NewClient(testSettings(server.URL))
	suggestions, err := client.Autocomplete(context.Background(), "eth")
	require.NoError(t, err)
	assert.Equal(t, []string{"ethanol", "ethyl acetate"}, suggestions)
}

func TestClient_StructureImage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/image/imgsrv.fcgi", r.URL.Path)
		require.Equal(t, "702", r.URL.Query().Get("cid"))
		require.Equal(t, "l", r.URL.Query().Get("t"))
		w.Write(png)
	}))
	defer server.Close()

	client := pubchem.NewClient(testSettings(server.URL))
	data, err := client.StructureImage(context.Background(), 702)
	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := pubchem.NewClient(testSettings(server.URL))
	_, err := client.Synonyms(context.Background(), 702)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"PropertyTable": `))
	}))
	defer server.Close()

	client := pubchem.NewClient(testSettings(server.URL))
	_, err := client.Properties(context.Background(), 702, []string{"MolecularWeight"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFetchParseFailed.Error())
}

func TestProbe_Online(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	probe := pubchem.NewProbe(testSettings(server.URL))
	assert.True(t, probe.Online(context.Background()))
}

func TestProbe_Offline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	settings := testSettings(server.URL)
	server.Close()

	probe := pubchem.NewProbe(settings)
	assert.False(t, probe.Online(context.Background()))
}
