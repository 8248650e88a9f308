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
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table [flags] expression",
	Short: "Generate the truth table for a boolean expression.",
	Long: `Generate the truth table for a boolean expression and print it,
	one row per assignment of the expression's variables.  The first
	variable to appear in the expression is the most significant bit of
	the row index.`,
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
		applyPresentation(cmd, table)
		//
		row := GetInt(cmd, "row")
		output := GetString(cmd, "output")
		//
		switch {
		case row >= 0:
			inputs, out, err := table.GetRow(uint(row))
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			bits := make([]string, len(inputs))
			for k, bit := range inputs {
				bits[k] = strconv.Itoa(int(bit))
			}
			//
			fmt.Printf("%s | %d\n", strings.Join(bits, " "), out)
		case output != "":
			out, err := table.GetOutput(output)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			fmt.Println(out)
		default:
			printTable(table)
		}
		//
		if GetFlag(cmd, "sop") {
			fmt.Println(table.SumOfProducts())
		}
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringArray("alias", nil, "set a display alias (VAR=LABEL, repeatable)")
	tableCmd.Flags().String("order", "", "set a display ordering (comma-separated variables)")
	tableCmd.Flags().Int("row", -1, "print a single row by (zero-based) index")
	tableCmd.Flags().String("output", "", "print the output for a given input vector (e.g. 01)")
	tableCmd.Flags().Bool("sop", false, "also print the sum-of-products form")
}
