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
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/LiamGraham/truthtable/pkg/ttable"
	"github.com/LiamGraham/truthtable/pkg/util/source"
	"github.com/LiamGraham/truthtable/pkg/util/termio"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected int flag, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array flag, or panic if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Build the truth table for a given expression, reporting syntax errors with
// highlighting and exiting on failure.
func buildTable(expression string) *ttable.TruthTable {
	table, err := ttable.New(expression)
	if err == nil {
		return table
	}
	//
	var (
		lexErr   *ttable.LexError
		parseErr *ttable.ParseError
	)
	//
	switch {
	case errors.As(err, &lexErr):
		printSyntaxError(lexErr.SyntaxError)
	case errors.As(err, &parseErr):
		printSyntaxError(parseErr.SyntaxError)
	default:
		fmt.Println(err)
	}
	//
	os.Exit(2)
	// unreachable
	return nil
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	var (
		line = err.FirstEnclosingLine()
		span = err.Span()
	)
	// Print error
	fmt.Printf("error: %s\n", err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent
	fmt.Print(strings.Repeat(" ", span.Start()-line.Start()))
	// Print highlight
	fmt.Println(strings.Repeat("^", max(1, span.Length())))
}

// Apply any alias / ordering flags to a given table, exiting on invalid
// input.
func applyPresentation(cmd *cobra.Command, table *ttable.TruthTable) {
	for _, a := range GetStringArray(cmd, "alias") {
		parts := strings.SplitN(a, "=", 2)
		//
		if len(parts) != 2 {
			fmt.Printf("malformed alias %q (expected VAR=LABEL)\n", a)
			os.Exit(1)
		}
		//
		if err := table.SetAlias(parts[0], parts[1]); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	if order := GetString(cmd, "order"); order != "" {
		if err := table.SetOrdering(strings.Split(order, ",")); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
}

// Render a complete truth table, applying display ordering and aliases to the
// variable columns.  The output column is colourised when stdout is a
// terminal.
func printTable(table *ttable.TruthTable) {
	var (
		display   = displayOrder(table)
		aliases   = table.Aliases()
		variables = table.Variables()
		n         = uint(len(display))
		rows      = table.NumRows()
		printer   = termio.NewTablePrinter(n+1, rows+1)
	)
	// Header row
	header := make([]string, n+1)
	//
	for k, v := range display {
		header[k] = aliases[v]
	}
	//
	header[n] = "X"
	printer.SetRow(0, header...)
	// Data rows
	for i := uint(0); i < rows; i++ {
		inputs, output, _ := table.GetRow(i)
		row := make([]string, n+1)
		//
		for k, v := range display {
			pos := slices.Index(variables, v)
			row[k] = strconv.Itoa(int(inputs[pos]))
		}
		//
		row[n] = strconv.Itoa(int(output))
		printer.SetRow(i+1, row...)
		//
		colour := termio.TERM_RED
		if output == 1 {
			colour = termio.TERM_GREEN
		}
		//
		printer.SetEscape(n, i+1, termio.NewAnsiEscape().FgColour(colour).Build())
	}
	//
	printer.AnsiEscapes(term.IsTerminal(int(os.Stdout.Fd())))
	printer.Print()
}

// Determine the variable ordering used for presentation: the table's display
// ordering when set, else canonical order.
func displayOrder(table *ttable.TruthTable) []string {
	if ordering := table.Ordering(); ordering != nil {
		return ordering
	}
	//
	return table.Variables()
}
