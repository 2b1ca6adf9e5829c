// Package normalize turns raw model output into a typed Itinerary. Parsing is
// strict: no markdown-fence stripping and no repair of truncated JSON. Keeping
// the output clean is the prompt's job; this boundary only guards downstream
// consumers against non-conforming text.
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"itinerary-relay/internal/common/errors"
	"itinerary-relay/internal/itinerary"
)

// Normalizer validates raw text against the itinerary schema and decodes it.
type Normalizer struct {
	schema *gojsonschema.Schema
}

func NewNormalizer() (*Normalizer, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(itinerarySchema))
	if err != nil {
		return nil, fmt.Errorf("compile itinerary schema: %w", err)
	}
	return &Normalizer{schema: schema}, nil
}

// Parse validates and decodes text into an Itinerary. Any parse or schema
// failure surfaces as a SCHEMA_ERROR; a partial object is never returned.
func (n *Normalizer) Parse(text string) (*itinerary.Itinerary, error) {
	result, err := n.schema.Validate(gojsonschema.NewStringLoader(text))
	if err != nil {
		// Loader errors mean the text was not JSON at all.
		return nil, errors.NewSchemaError(err.Error())
	}
	if !result.Valid() {
		return nil, errors.NewSchemaError(formatResultErrors(result))
	}

	var it itinerary.Itinerary
	if err := json.Unmarshal([]byte(text), &it); err != nil {
		return nil, errors.NewSchemaError(err.Error())
	}

	// Cross-field invariant the schema cannot express: activity days must
	// fall inside the trip duration.
	for _, a := range it.Activities {
		if a.Day > it.Duration.Days {
			return nil, errors.NewSchemaError(fmt.Sprintf(
				"activity %s: day %d outside trip duration of %d days", a.ID, a.Day, it.Duration.Days))
		}
	}

	return &it, nil
}

func formatResultErrors(result *gojsonschema.Result) string {
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return strings.Join(msgs, "; ")
}
