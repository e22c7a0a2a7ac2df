package main

import (
	"github.com/spf13/cobra"

	"github.com/Kenny-R/dpllsat/config"
)

// loadConfigMap seeds a raw config map from the --config YAML file, if one
// was given, for config.Decode to merge flag overrides into. Flags always
// take precedence over the file; callers set raw[key] for each flag the
// user actually passed (cmd.Flags().Changed), never for flags left at
// their zero-value default.
func loadConfigMap(cmd *cobra.Command) (map[string]interface{}, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		return map[string]interface{}{}, nil
	}
	return config.LoadFile(path)
}
