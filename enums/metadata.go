package enums

import (
	"bytes"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v6"
)

// AppMetadata describes an app (integration).
type AppMetadata struct {
	Name        string `json:"name" jsonschema:"required"`
	IsLocal     bool   `json:"is_local" jsonschema:"required"`
	Description string `json:"description,omitempty"`
}

// ActionMetadata describes an action (a tool) of an app.
type ActionMetadata struct {
	Name       string   `json:"name" jsonschema:"required"`
	App        string   `json:"app" jsonschema:"required"`
	Tags       []string `json:"tags" jsonschema:"required"`
	NoAuth     bool     `json:"no_auth" jsonschema:"required"`
	IsLocal    bool     `json:"is_local" jsonschema:"required"`
	IsRuntime  bool     `json:"is_runtime,omitempty"`
	Shell      bool     `json:"shell,omitempty"`
	Path       string   `json:"path,omitempty"`
	ReplacedBy string   `json:"replaced_by,omitempty"`
}

// TagMetadata describes an action tag of an app.
type TagMetadata struct {
	App   string `json:"app" jsonschema:"required"`
	Value string `json:"value" jsonschema:"required"`
}

// TriggerMetadata describes a trigger of an app.
type TriggerMetadata struct {
	Slug string `json:"slug" jsonschema:"required"`
	Name string `json:"name" jsonschema:"required"`
	App  string `json:"app" jsonschema:"required"`
}

var metadataRecords = map[Namespace]any{
	NamespaceApp:     &AppMetadata{},
	NamespaceAction:  &ActionMetadata{},
	NamespaceTag:     &TagMetadata{},
	NamespaceTrigger: &TriggerMetadata{},
}

// metadataSchemas reflects every record into a JSON Schema and compiles it once per
// process. A cache entry that fails its namespace schema is stale.
var metadataSchemas = sync.OnceValues(compileMetadataSchemas)

func compileMetadataSchemas() (map[Namespace]*validator.Schema, error) {
	r := &jsonschema.Reflector{
		Anonymous:                  true,
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}
	c := validator.NewCompiler()
	out := make(map[Namespace]*validator.Schema, len(metadataRecords))
	for _, ns := range Namespaces {
		data, err := json.Marshal(r.Reflect(metadataRecords[ns]))
		if err != nil {
			return nil, fmt.Errorf("reflect %s metadata schema: %w", ns, err)
		}
		doc, err := validator.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode %s metadata schema: %w", ns, err)
		}
		url := "mem:///toolcore/enums/" + ns.Dir() + ".json"
		if err := c.AddResource(url, doc); err != nil {
			return nil, fmt.Errorf("add %s metadata schema: %w", ns, err)
		}
		compiled, err := c.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile %s metadata schema: %w", ns, err)
		}
		out[ns] = compiled
	}
	return out, nil
}

// validateMetadata checks raw JSON metadata against the schema of ns.
func validateMetadata(ns Namespace, data []byte) error {
	schemas, err := metadataSchemas()
	if err != nil {
		return err
	}
	inst, err := validator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s metadata: %w", ns, err)
	}
	if err := schemas[ns].Validate(inst); err != nil {
		return fmt.Errorf("%s metadata: %w", ns, err)
	}
	return nil
}

// decodeMetadata validates data and decodes it into a generic map.
func decodeMetadata(ns Namespace, data []byte) (map[string]any, error) {
	if err := validateMetadata(ns, data); err != nil {
		return nil, err
	}
	var meta map[string]any
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", ns, err)
	}
	return meta, nil
}

// toMap converts a metadata record (struct or map) into a generic map.
func toMap(meta any) (map[string]any, error) {
	if m, ok := meta.(map[string]any); ok {
		return m, nil
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("metadata must be a JSON object, got %T", meta)
	}
	return m, nil
}
