package lib

import (
	"fmt"
	"strings"
	"time"

	"github.com/5amCurfew/tap-leadbyte/models"
	"github.com/5amCurfew/tap-leadbyte/streams"
	util "github.com/5amCurfew/tap-leadbyte/util"
)

// Conform projects a raw API row onto the stream's declared schema:
// undeclared fields are dropped, missing optional fields become null, and
// a missing key property is an error for that row
func Conform(s *streams.Stream, raw map[string]interface{}) (map[string]interface{}, error) {
	if s.PostProcess != nil {
		s.PostProcess(raw)
	}

	properties, _ := s.Schema["properties"].(map[string]interface{})
	record := make(map[string]interface{}, len(properties))
	for name := range properties {
		if value, ok := raw[name]; ok {
			record[name] = value
		} else {
			record[name] = nil
		}
	}

	for _, key := range s.KeyProperties {
		if util.GetValueAtPath(strings.Split(key, "."), record) == nil {
			return nil, fmt.Errorf("record missing key property %q", key)
		}
	}

	return record, nil
}

// replicationTime extracts the replication-key timestamp from a record.
// Report endpoints that aggregate without a period field get the
// sub-window start stamped in, keeping ordering and bookmark advancement
// well-defined.
func replicationTime(s *streams.Stream, record map[string]interface{}, w Window) time.Time {
	if value, ok := record[s.ReplicationKey].(string); ok && value != "" {
		if t, err := models.ParseTime(value); err == nil {
			return t
		}
	}

	record[s.ReplicationKey] = w.Start.UTC().Format(time.RFC3339)
	return w.Start
}
