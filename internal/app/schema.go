package app

import "github.com/invopop/jsonschema"

// QuoteRequestSchema returns the JSON Schema for QuoteRequest. The web
// layer validates incoming job payloads against it before calling the
// pricing engine, so malformed specification bags fail at the edge.
func QuoteRequestSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v QuoteRequest
	return reflector.Reflect(v)
}
