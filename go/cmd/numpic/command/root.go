/*
Copyright 2025 The Numpic Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package command holds the numpic sub-commands.
package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/numpic/numpic/go/log"
)

var (
	configFile string
	symbolOpts []string
)

// Root builds the numpic command tree.
func Root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "numpic",
		Short:         "Format numbers and timestamps with picture strings",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(cmd.Flags()); err != nil {
				return err
			}
			return loadConfig()
		},
		Run: func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config-file", "f", "",
		"YAML config file with a 'symbols' map of role overrides")
	rootCmd.MarkPersistentFlagFilename("config-file", "yaml", "yml")
	pf.StringArrayVarP(&symbolOpts, "symbol", "s", nil,
		"symbol override as role=value, repeatable (e.g. -s decimal-separator=,)")
	log.RegisterFlags(pf)

	rootCmd.AddCommand(Format())
	rootCmd.AddCommand(Validate())
	rootCmd.AddCommand(Integer())
	rootCmd.AddCommand(Datetime())

	return rootCmd
}

// loadConfig reads the optional config file into viper. Flag overrides are
// applied on top in symbolOverrides.
func loadConfig() error {
	viper.SetConfigType("yaml")
	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	log.InfoS("loaded config", "file", viper.ConfigFileUsed())
	return nil
}

// symbolOverrides merges the config file's symbols map with the --symbol
// flags, flags winning.
func symbolOverrides() (map[string]string, error) {
	overrides := map[string]string{}
	for k, v := range viper.GetStringMapString("symbols") {
		overrides[k] = v
	}
	for _, opt := range symbolOpts {
		role, value, ok := strings.Cut(opt, "=")
		if !ok {
			return nil, fmt.Errorf("bad --symbol %q: want role=value", opt)
		}
		overrides[role] = value
	}
	if len(overrides) == 0 {
		return nil, nil
	}
	return overrides, nil
}
