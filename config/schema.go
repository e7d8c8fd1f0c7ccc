package config

import (
	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema for settings files, for editor
// completion and external validation of persisted settings. Settings
// files are hand-edited, so the schema rejects unknown properties.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	return reflector.Reflect(&Config{})
}
