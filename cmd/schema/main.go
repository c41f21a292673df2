// Command schema writes the JSON schema of the configuration file.
// With --check it verifies the embedded schema still matches the config structs instead.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/config"
)

type opts struct {
	Output string `short:"o" long:"output" default:"schema.json" description:"schema file to write or check"`
	Check  bool   `long:"check" description:"fail if the schema file differs from the generated schema"`
}

func main() {
	var o opts
	if _, err := flags.Parse(&o); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	data, err := render()
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}

	if o.Check {
		current, err := os.ReadFile(o.Output)
		if err != nil {
			log.Fatalf("failed to read schema file: %v", err)
		}
		if !bytes.Equal(current, data) {
			log.Fatalf("%s is out of date, regenerate it", o.Output)
		}
		fmt.Printf("Schema %s is up to date\n", o.Output)
		return
	}

	if err := os.WriteFile(o.Output, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write schema file: %v", err)
	}

	fmt.Printf("Schema generated successfully at %s\n", o.Output)
}

// render returns the indented schema with a trailing newline
func render() ([]byte, error) {
	data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
