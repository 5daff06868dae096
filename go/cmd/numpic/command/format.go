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

	"github.com/numpic/numpic/go/log"
	"github.com/numpic/numpic/go/numfmt"
)

// Format builds the "format" sub-command.
func Format() *cobra.Command {
	return &cobra.Command{
		Use:   "format <picture> <value> [<value> ...]",
		Short: "Format numeric values with a decimal picture string",
		Example: `  numpic format '#,##0.00' 1234567.891
  numpic format '0.00e0' 1234
  numpic -s zero-digit=٠ format '#,##0.00' 1234.5`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := symbolOverrides()
			if err != nil {
				return err
			}
			f, err := numfmt.NewFormatter(args[0], overrides)
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("bad value %q: %w", arg, err)
				}
				out := f.Format(v)
				log.InfoS("formatted", "picture", args[0], "value", v, "result", out)
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}
