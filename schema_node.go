package toolcore

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Properties holds the properties of an object node in document order.
type Properties = orderedmap.OrderedMap[string, *SchemaNode]

// SchemaNode is one node of a tool's input or output schema. It is the subset of JSON
// Schema the backend emits, plus two extension flags on object nodes (file_uploadable,
// file_downloadable) that file-transfer collaborators rely on.
//
// Required lists names of this node's own direct properties only.
type SchemaNode struct {
	Type        string
	Types       []string // set instead of Type when "type" is a JSON array
	Properties  *Properties
	Items       *SchemaNode
	OneOf       []*SchemaNode
	AnyOf       []*SchemaNode
	Required    []string
	Title       string
	Description string
	Enum        []any
	Examples    []any

	// Default is only meaningful when HasDefault is true; "default": null yields
	// HasDefault == true and Default == nil.
	Default    any
	HasDefault bool

	FileUploadable   bool
	FileDownloadable bool
}

type schemaNodeJSON struct {
	Properties       *Properties   `json:"properties"`
	Items            *SchemaNode   `json:"items"`
	OneOf            []*SchemaNode `json:"oneOf"`
	AnyOf            []*SchemaNode `json:"anyOf"`
	Required         []string      `json:"required"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Enum             []any         `json:"enum"`
	Examples         []any         `json:"examples"`
	FileUploadable   bool          `json:"file_uploadable"`
	FileDownloadable bool          `json:"file_downloadable"`
}

// UnmarshalJSON decodes a schema node, keeping property order and default presence.
func (n *SchemaNode) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	var body schemaNodeJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	*n = SchemaNode{
		Properties:       body.Properties,
		Items:            body.Items,
		OneOf:            body.OneOf,
		AnyOf:            body.AnyOf,
		Required:         body.Required,
		Title:            body.Title,
		Description:      body.Description,
		Enum:             body.Enum,
		Examples:         body.Examples,
		FileUploadable:   body.FileUploadable,
		FileDownloadable: body.FileDownloadable,
	}
	if rawType, ok := keys["type"]; ok {
		if err := n.decodeType(rawType); err != nil {
			return err
		}
	}
	if rawDefault, ok := keys["default"]; ok {
		if err := json.Unmarshal(rawDefault, &n.Default); err != nil {
			return fmt.Errorf("decode default: %w", err)
		}
		n.HasDefault = true
	}
	return nil
}

func (n *SchemaNode) decodeType(raw json.RawMessage) error {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		n.Type = single
		return nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return fmt.Errorf("schema type must be a string or an array of strings: %s", raw)
	}
	if len(many) == 1 {
		n.Type = many[0]
		return nil
	}
	n.Types = many
	return nil
}

// ParseSchema decodes a JSON schema document into a SchemaNode.
func ParseSchema(data []byte) (*SchemaNode, error) {
	var n SchemaNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return &n, nil
}

// ParseSchemaMap converts an already-decoded schema (e.g. from a response body) into a
// SchemaNode. Go maps carry no key order, so properties come out sorted by name; use
// ParseSchema on the raw bytes when document order matters.
func ParseSchemaMap(schemaMap map[string]any) (*SchemaNode, error) {
	if schemaMap == nil {
		return nil, fmt.Errorf("schema map must not be nil")
	}
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return ParseSchema(data)
}

func (n *SchemaNode) requiredSet() map[string]bool {
	set := make(map[string]bool, len(n.Required))
	for _, name := range n.Required {
		set[name] = true
	}
	return set
}
