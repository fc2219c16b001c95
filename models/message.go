package models

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Out receives Singer messages; stdout in normal operation. Logs go to
// stderr so the two never interleave.
var Out io.Writer = os.Stdout

type Message struct {
	Type               string                 `json:"type"`
	Record             map[string]interface{} `json:"record,omitempty"`
	Stream             string                 `json:"stream,omitempty"`
	Schema             interface{}            `json:"schema,omitempty"`
	Value              interface{}            `json:"value,omitempty"`
	KeyProperties      []string               `json:"key_properties,omitempty"`
	BookmarkProperties []string               `json:"bookmark_properties,omitempty"`
}

func writeMessage(message Message) error {
	messageJson, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshalling %s message: %w", message.Type, err)
	}

	if _, err := Out.Write(append(messageJson, '\n')); err != nil {
		return fmt.Errorf("error writing %s message: %w", message.Type, err)
	}

	return nil
}

// ProduceRecordMessage emits a RECORD message for a stream
func ProduceRecordMessage(stream string, record map[string]interface{}) error {
	return writeMessage(Message{
		Type:   "RECORD",
		Stream: stream,
		Record: record,
	})
}

// ProduceSchemaMessage emits a SCHEMA message for a stream
func ProduceSchemaMessage(stream string, schema map[string]interface{}, keyProperties []string, bookmarkProperties []string) error {
	return writeMessage(Message{
		Type:               "SCHEMA",
		Stream:             stream,
		Schema:             schema,
		KeyProperties:      keyProperties,
		BookmarkProperties: bookmarkProperties,
	})
}
