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

	"github.com/spf13/cobra"

	"github.com/numpic/numpic/go/datefmt"
)

// Integer builds the "integer" sub-command.
func Integer() *cobra.Command {
	return &cobra.Command{
		Use:   "integer <picture> <value> [<value> ...]",
		Short: "Format integers as decimals, ordinals, roman numerals or words",
		Example: `  numpic integer '#,##0' 1234567
  numpic integer '1;o' 21
  numpic integer Ww 42`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args[1:] {
				v, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("bad value %q: %w", arg, err)
				}
				out, err := datefmt.FormatInteger(v, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}
