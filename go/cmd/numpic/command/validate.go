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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/numpic/numpic/go/numfmt"
)

// Validate builds the "validate" sub-command.
func Validate() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <picture> [<picture> ...]",
		Short: "Check decimal picture strings, reporting the error code for bad ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := symbolOverrides()
			if err != nil {
				return err
			}
			bad := 0
			for _, picture := range args {
				_, err := numfmt.NewFormatter(picture, overrides)
				switch perr := (*numfmt.PictureError)(nil); {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", picture)
				case errors.As(err, &perr):
					bad++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s\n", picture, perr.Code.ID(), perr.Code)
				default:
					return err
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d invalid picture(s)", bad)
			}
			return nil
		},
	}
}
