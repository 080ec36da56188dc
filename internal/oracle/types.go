package oracle

import "github.com/theirongolddev/calburn/internal/model"

// Candidate is one validated extraction result: a single food or exercise
// mention the oracle identified in the utterance. Calories is a magnitude
// in both cases.
type Candidate struct {
	Type     model.EntryType
	Item     string
	Calories int
	Quantity string
}

// generateRequest is the Gemini generateContent request body.
type generateRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   responseSchema  `json:"responseSchema"`
}

// responseSchema constrains the model to a JSON array of entry records.
type responseSchema struct {
	Type  string         `json:"type"`
	Items responseObject `json:"items"`
}

type responseObject struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

type schemaProperty struct {
	Type        string   `json:"type"`
	Enum        []string `json:"enum,omitempty"`
	Description string   `json:"description,omitempty"`
}

// generateResponse is the subset of the Gemini response we read.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// rawCandidate is one element of the oracle's JSON array payload.
// Fields are pointers so a missing field is distinguishable from a zero
// value; all four are required per the response contract.
type rawCandidate struct {
	EntryType *string `json:"entryType"`
	Item      *string `json:"item"`
	Calories  *int    `json:"calories"`
	Quantity  *string `json:"quantity"`
}

func entrySchema() responseSchema {
	return responseSchema{
		Type: "ARRAY",
		Items: responseObject{
			Type: "OBJECT",
			Properties: map[string]schemaProperty{
				"entryType": {
					Type:        "STRING",
					Enum:        []string{"FOOD", "EXERCISE", "UNKNOWN"},
					Description: "Whether the input describes eating food or doing exercise.",
				},
				"item": {
					Type:        "STRING",
					Description: "A concise name of the food or exercise.",
				},
				"calories": {
					Type:        "INTEGER",
					Description: "The estimated calorie amount (always positive).",
				},
				"quantity": {
					Type:        "STRING",
					Description: "The quantity or duration extracted from text (e.g. '2 eggs', '30 mins').",
				},
			},
			Required: []string{"entryType", "item", "calories", "quantity"},
		},
	}
}
