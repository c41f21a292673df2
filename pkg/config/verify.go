package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema []byte

// VerifyAgainstEmbeddedSchema checks that every config value is described by the embedded JSON schema
// and that required values are set. A mismatch usually means schema.json needs regeneration.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal(embeddedSchema, &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := checkDescribed(&schema, refName(schema.Ref), configMap, ""); err != nil {
		return fmt.Errorf("schema mismatch: %w", err)
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// checkDescribed walks values and fails on the first key missing from the schema definition
func checkDescribed(root *jsonschema.Schema, def string, values map[string]any, path string) error {
	s, ok := root.Definitions[def]
	if !ok || s.Properties == nil {
		return fmt.Errorf("definition %q not found", def)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		prop, found := s.Properties.Get(key)
		if !found {
			return fmt.Errorf("%s%s is not described", path, key)
		}
		nested, isObject := values[key].(map[string]any)
		if !isObject || prop.Ref == "" {
			continue
		}
		if err := checkDescribed(root, refName(prop.Ref), nested, path+key+"."); err != nil {
			return err
		}
	}
	return nil
}

func refName(ref string) string {
	return strings.TrimPrefix(ref, "#/$defs/")
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if cfg.Browser.CDPURL == "" {
		return fmt.Errorf("browser.cdp_url is required")
	}
	if cfg.Schedule.CheckInterval == 0 {
		return fmt.Errorf("schedule.check_interval is required")
	}
	if cfg.Defaults.InactivityThreshold == 0 {
		return fmt.Errorf("defaults.inactivity_threshold is required")
	}
	if cfg.Defaults.AdaptiveMode && cfg.Defaults.LearningPeriod && cfg.Defaults.LearningPeriodDuration == 0 {
		return fmt.Errorf("defaults.learning_period_duration is required with adaptive learning")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
