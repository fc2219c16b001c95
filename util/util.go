package util

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes v to filePath as indented JSON
func WriteJSON(filePath string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling json for %s: %w", filePath, err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", filePath, err)
	}

	return nil
}

// GetValueAtPath traverses nested maps following path and returns the value found (nil if absent)
func GetValueAtPath(path []string, input map[string]interface{}) interface{} {
	if len(path) == 0 {
		return nil
	}
	if check, ok := input[path[0]]; !ok || check == nil {
		return nil
	}
	if len(path) == 1 {
		return input[path[0]]
	}

	nextInput, ok := input[path[0]].(map[string]interface{})
	if !ok {
		return nil
	}

	return GetValueAtPath(path[1:], nextInput)
}

func ToString(v interface{}) string {
	return fmt.Sprintf("%v", v)
}

func IsEmpty(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	default:
		return false
	}
}
