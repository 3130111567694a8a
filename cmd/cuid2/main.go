//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package main

import (
	"fmt"
	"os"

	"github.com/fogfish/cuid2"
	"github.com/spf13/cobra"
)

func main() {
	var length int

	root := &cobra.Command{
		Use:   "cuid2",
		Short: "Generate a collision-resistant CUID2 identifier",
		Long: `Generate a collision-resistant, sortable, url-safe CUID2 identifier
and print it to standard output.`,
		Example: `  cuid2              # generate default length (24) identifier
  cuid2 -l 16        # generate 16-character identifier
  cuid2 --length 32  # generate maximum length (32) identifier`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cuid2.Generate(length)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	root.Flags().IntVarP(&length, "length", "l", cuid2.DefaultLength,
		fmt.Sprintf("length of the generated identifier, between %d and %d", cuid2.MinLength, cuid2.MaxLength))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
