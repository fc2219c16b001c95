package models

import (
	"encoding/json"
	"fmt"
	"os"

	util "github.com/5amCurfew/tap-leadbyte/util"
	"github.com/xeipuuv/gojsonschema"
)

// CatalogPath is the location of the catalog file written in discovery mode
var CatalogPath = "catalog.json"

// TapCatalog is the serialized form of the static stream descriptors
type TapCatalog struct {
	Streams []CatalogEntry `json:"streams"`
}

type CatalogEntry struct {
	Stream            string                 `json:"stream"`
	TapStreamID       string                 `json:"tap_stream_id"`
	KeyProperties     []string               `json:"key_properties"`
	ReplicationMethod string                 `json:"replication_method"`
	ReplicationKey    string                 `json:"replication_key,omitempty"`
	Schema            map[string]interface{} `json:"schema"`
}

// Write persists the catalog file
func (c *TapCatalog) Write() error {
	if err := util.WriteJSON(CatalogPath, c); err != nil {
		return fmt.Errorf("error writing catalog file: %w", err)
	}
	return nil
}

// Read loads the catalog file
func (c *TapCatalog) Read() error {
	catalogFile, err := os.ReadFile(CatalogPath)
	if err != nil {
		return fmt.Errorf("error reading catalog file: %w", err)
	}

	if err := json.Unmarshal(catalogFile, c); err != nil {
		return fmt.Errorf("error unmarshaling catalog json: %w", err)
	}

	return nil
}

// RecordVersusSchema validates a record against a stream's declared schema
func RecordVersusSchema(record map[string]interface{}, schema map[string]interface{}) (bool, error) {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	recordLoader := gojsonschema.NewGoLoader(record)

	result, err := gojsonschema.Validate(schemaLoader, recordLoader)
	if err != nil {
		return false, fmt.Errorf("error validating record: %w", err)
	}

	if result.Valid() {
		return true, nil
	}

	return false, fmt.Errorf("%s", result.Errors())
}
