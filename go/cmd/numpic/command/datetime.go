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

package command

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/numpic/numpic/go/datefmt"
)

// Datetime builds the "datetime" sub-command.
func Datetime() *cobra.Command {
	var picture, tz string
	cmd := &cobra.Command{
		Use:   "datetime [<timestamp> ...]",
		Short: "Render timestamps with a date/time picture string",
		Long: `Render timestamps with a date/time picture string.

Each timestamp is epoch milliseconds or an ISO 8601 instant; with no
arguments the current time is rendered.`,
		Example: `  numpic datetime
  numpic datetime --picture '[FNn], [D1o] [MNn] [Y]' 1510067557121
  numpic datetime --tz America/New_York 2017-11-07T15:12:37Z`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := time.UTC
			if tz != "" {
				var err error
				if loc, err = time.LoadLocation(tz); err != nil {
					return err
				}
			}
			if len(args) == 0 {
				args = []string{strconv.FormatInt(datefmt.Millis(), 10)}
			}
			for _, arg := range args {
				ms, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					if ms, err = datefmt.ToMillis(arg); err != nil {
						return fmt.Errorf("bad timestamp %q: not epoch milliseconds or ISO 8601", arg)
					}
				}
				out, err := datefmt.FromMillis(ms, picture, loc)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&picture, "picture", "p", "",
		"date/time picture, e.g. '[Y0001]-[M01]-[D01]'; empty for ISO 8601")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone name, default UTC")
	return cmd
}
