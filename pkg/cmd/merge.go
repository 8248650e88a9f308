// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge [flags] expression operator expression",
	Short: "Merge the truth tables of two expressions under a binary operator.",
	Long: `Merge the truth tables of two expressions under a binary operator
	(one of & . + ^ #), producing the table of their parenthesized
	combination over the union of both variable sets.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		lhs := buildTable(args[0])
		rhs := buildTable(args[2])
		//
		merged, err := lhs.Merge(rhs, args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		applyPresentation(cmd, merged)
		//
		fmt.Println(merged.Expression())
		printTable(merged)
		//
		if GetFlag(cmd, "sop") {
			fmt.Println(merged.SumOfProducts())
		}
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringArray("alias", nil, "set a display alias (VAR=LABEL, repeatable)")
	mergeCmd.Flags().String("order", "", "set a display ordering (comma-separated variables)")
	mergeCmd.Flags().Bool("sop", false, "also print the sum-of-products form")
}
