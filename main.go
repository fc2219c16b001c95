package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/5amCurfew/tap-leadbyte/cmd"
	"github.com/5amCurfew/tap-leadbyte/models"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0"
var discover bool = false
var selectedStreams string

func main() {
	Execute()
}

func Execute() {
	rootCmd.Flags().BoolVarP(&discover, "discover", "d", false, "run the tap in discovery mode, writing the stream catalog")
	rootCmd.Flags().StringVarP(&selectedStreams, "streams", "s", "", "comma-separated list of streams to extract (default: all)")

	if err := rootCmd.Execute(); err != nil {
		log.WithFields(log.Fields{"Error": err}).Fatalln("error using tap-leadbyte")
		os.Exit(1)
	} else {
		os.Exit(0)
	}
}

var rootCmd = &cobra.Command{
	Use:     "tap-leadbyte [PATH_TO_CONFIG_JSON]",
	Version: version,
	Short:   "tap-leadbyte - LeadByte data extraction CLI",
	Long:    `tap-leadbyte is a command line interface to extract reporting and master data from the LeadByte REST API to pipe to any target that meets the Singer.io specification.`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(command *cobra.Command, args []string) error {
		// stdout carries Singer messages; everything else goes to stderr
		log.SetOutput(os.Stderr)
		log.SetFormatter(&log.JSONFormatter{})

		// Default to config.json if no path is provided
		cfgPath := "config.json"
		if len(args) > 0 {
			cfgPath = args[0]
		} else {
			log.Info("no config JSON path provided, defaulting to config.json")
		}

		if err := readConfig(cfgPath); err != nil {
			return fmt.Errorf("error parsing config JSON: %w", err)
		}

		if discover {
			if err := cmd.Discover(); err != nil {
				return fmt.Errorf("failed to discover streams: %w", err)
			}
			return nil
		}

		if err := cmd.Extract(selectedStreams); err != nil {
			return fmt.Errorf("failed to extract records: %w", err)
		}

		return nil
	},
}

func readConfig(filePath string) error {
	_ = godotenv.Load()

	config, readConfigError := os.ReadFile(filePath)
	if readConfigError != nil {
		return fmt.Errorf("error reading %s: %w", filePath, readConfigError)
	}

	if jsonError := json.Unmarshal(config, &models.Config); jsonError != nil {
		return fmt.Errorf("error unmarshalling %s: %w", filePath, jsonError)
	}

	// The API key may be supplied via the environment instead of the
	// config file
	if key := os.Getenv("LEADBYTE_API_KEY"); key != "" {
		models.Config.APIKey = key
	}

	models.Config.ApplyDefaults()
	return models.Config.Validate()
}
