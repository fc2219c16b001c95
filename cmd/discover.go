package cmd

import (
	"fmt"

	"github.com/5amCurfew/tap-leadbyte/models"
	"github.com/5amCurfew/tap-leadbyte/streams"
	log "github.com/sirupsen/logrus"
)

// Discover serializes the static stream descriptors to catalog.json
func Discover() error {
	var catalog models.TapCatalog
	for _, s := range streams.All {
		catalog.Streams = append(catalog.Streams, s.CatalogEntry())
	}

	if err := catalog.Write(); err != nil {
		return fmt.Errorf("error writing catalog: %w", err)
	}

	log.WithFields(log.Fields{"streams": len(catalog.Streams), "path": models.CatalogPath}).Info("catalog written")
	return nil
}
