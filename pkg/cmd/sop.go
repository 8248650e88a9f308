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

// sopCmd represents the sop command
var sopCmd = &cobra.Command{
	Use:   "sop [flags] expression",
	Short: "Derive a sum-of-products expression from a truth table.",
	Long: `Derive the sum-of-products form of a boolean expression: the
	disjunction of one conjunctive term per truth table row whose output
	is 1.  An expression which is never true yields the constant 0.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		table := buildTable(args[0])
		//
		fmt.Println(table.SumOfProducts())
	},
}

func init() {
	rootCmd.AddCommand(sopCmd)
}
