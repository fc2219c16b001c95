package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/5amCurfew/tap-leadbyte/lib"
	"github.com/5amCurfew/tap-leadbyte/models"
	"github.com/5amCurfew/tap-leadbyte/streams"
	log "github.com/sirupsen/logrus"
)

type ExecutionMetric struct {
	ExecutionStart    time.Time     `json:"execution_start,omitempty"`
	ExecutionEnd      time.Time     `json:"execution_end,omitempty"`
	ExecutionDuration time.Duration `json:"execution_duration,omitempty"`
	NewRecords        uint64        `json:"new_records"`
	FailedStreams     []string      `json:"failed_streams,omitempty"`
}

// Extract runs each selected stream in sequence. A stream failure is
// logged and does not stop the remaining streams; its last-persisted
// bookmark is the unit of recovery for the next run.
func Extract(selected string) error {
	var execution ExecutionMetric
	execution.ExecutionStart = time.Now().UTC()

	// Create state.json on first run
	if _, err := os.Stat(models.StatePath); err != nil {
		if err := models.State.Create(); err != nil {
			return fmt.Errorf("error creating state file: %w", err)
		}
	}

	if err := models.State.Read(); err != nil {
		return fmt.Errorf("error reading state file: %w", err)
	}

	selectedStreams, err := streams.Selected(splitSelected(selected))
	if err != nil {
		return err
	}

	client := lib.NewClient(&models.Config)
	syncer := lib.NewSyncer(client, &models.Config, execution.ExecutionStart)

	for _, s := range selectedStreams {
		log.WithFields(log.Fields{"stream": s.Name, "replication_method": s.ReplicationMethod}).Info("extracting stream")

		if err := models.ProduceSchemaMessage(s.Name, s.Schema, s.KeyProperties, bookmarkProperties(s)); err != nil {
			return fmt.Errorf("error generating schema message: %w", err)
		}

		metric, err := syncer.Sync(s)
		if err != nil {
			log.WithFields(log.Fields{"stream": s.Name, "error": err}).Error("stream extraction failed")
			execution.FailedStreams = append(execution.FailedStreams, s.Name)
			continue
		}

		log.WithFields(log.Fields{"metrics": metric}).Info("stream extracted")
		execution.NewRecords += metric.NewRecords
	}

	execution.ExecutionEnd = time.Now().UTC()
	execution.ExecutionDuration = execution.ExecutionEnd.Sub(execution.ExecutionStart)
	log.WithFields(log.Fields{"metrics": execution}).Info("execution metrics")

	if len(execution.FailedStreams) > 0 {
		return fmt.Errorf("extraction failed for streams: %s", strings.Join(execution.FailedStreams, ", "))
	}
	return nil
}

func bookmarkProperties(s *streams.Stream) []string {
	if s.ReplicationKey == "" {
		return nil
	}
	return []string{s.ReplicationKey}
}

func splitSelected(selected string) []string {
	if strings.TrimSpace(selected) == "" {
		return nil
	}

	var names []string
	for _, name := range strings.Split(selected, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
