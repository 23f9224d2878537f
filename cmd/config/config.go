package config

import (
	"github.com/spf13/cobra"
)

const (
	configKindString = iota
	configKindBool
	configKindFloat
)

type configEntry struct {
	kind int
	help string
}

// File is the config file written by `config set`
var File string

var config = map[string]configEntry{
	"server":    {configKindString, "URL of the WebCraftAPI server"},
	"username":  {configKindString, "default username for `webcraft login`"},
	"output":    {configKindString, "default output format (json or yaml)"},
	"ratelimit": {configKindFloat, "maximum requests per second (0 = unlimited)"},
	"verbose":   {configKindBool, "log every request"},
	"nocolor":   {configKindBool, "disable color output"},
}

var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}
