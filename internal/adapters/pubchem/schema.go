package pubchem

import "github.com/MdAbusufiyan/lab-buddy/internal/core/domain"

// Wire shapes of the PUG REST endpoints. Only the branches the application
// reads are modeled; everything else is ignored by the decoder.

type compoundLookupResponse struct {
	PCCompounds []struct {
		ID struct {
			ID struct {
				CID int64 `json:"cid"`
			} `json:"id"`
		} `json:"id"`
		Props []struct {
			URN struct {
				Label string `json:"label"`
			} `json:"urn"`
			Value struct {
				SVal string `json:"sval"`
			} `json:"value"`
		} `json:"props"`
	} `json:"PC_Compounds"`
}

type propertyResponse struct {
	PropertyTable struct {
		Properties []map[string]any `json:"Properties"`
	} `json:"PropertyTable"`
}

type synonymsResponse struct {
	InformationList struct {
		Information []struct {
			Synonym []string `json:"Synonym"`
		} `json:"Information"`
	} `json:"InformationList"`
}

type fullRecordResponse struct {
	Record domain.RecordDocument `json:"Record"`
}

type autocompleteResponse struct {
	DictionaryTerms struct {
		Compound []string `json:"compound"`
	} `json:"dictionary_terms"`
}
