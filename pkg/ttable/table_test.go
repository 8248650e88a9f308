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
package ttable

import (
	"errors"
	"slices"
	"testing"

	"github.com/LiamGraham/truthtable/pkg/util/assert"
)

func Test_Table_01(t *testing.T) {
	checkOutputs(t, "A.B", 0, 0, 0, 1)
}

func Test_Table_02(t *testing.T) {
	checkOutputs(t, "A+B", 0, 1, 1, 1)
}

func Test_Table_03(t *testing.T) {
	checkOutputs(t, "!A", 1, 0)
}

func Test_Table_04(t *testing.T) {
	checkOutputs(t, "A^B", 0, 1, 1, 0)
}

func Test_Table_05(t *testing.T) {
	checkOutputs(t, "A#B", 0, 1, 1, 0)
}

func Test_Table_06(t *testing.T) {
	checkOutputs(t, "A.(B+C)", 0, 0, 0, 0, 0, 1, 1, 1)
}

func Test_Table_07(t *testing.T) {
	checkOutputs(t, "!(A&B)^C", 1, 0, 1, 0, 1, 0, 0, 1)
}

// Row lookup

func Test_Table_Row_01(t *testing.T) {
	table := mustTable(t, "A.B")
	//
	inputs, output, err := table.GetRow(3)
	assert.Equal(t, nil, err)
	assert.Equal(t, []uint8{1, 1}, inputs)
	assert.Equal(t, uint8(1), output)
}

func Test_Table_Row_02(t *testing.T) {
	table := mustTable(t, "A.B")
	//
	inputs, output, err := table.GetRow(2)
	assert.Equal(t, nil, err)
	assert.Equal(t, []uint8{1, 0}, inputs)
	assert.Equal(t, uint8(0), output)
}

func Test_Table_Row_03(t *testing.T) {
	table := mustTable(t, "A.B")
	//
	_, _, err := table.GetRow(4)
	assert.True(t, err != nil, "expected out-of-bounds error")
}

// Output lookup

func Test_Table_Output_01(t *testing.T) {
	table := mustTable(t, "A.B")
	//
	out, err := table.GetOutput("01")
	assert.Equal(t, nil, err)
	assert.Equal(t, uint8(0), out)
	//
	out, err = table.GetOutput("11")
	assert.Equal(t, nil, err)
	assert.Equal(t, uint8(1), out)
}

func Test_Table_Output_02(t *testing.T) {
	table := mustTable(t, "A.B")
	//
	_, err := table.GetOutput("011")
	//
	var shapeErr *ShapeMismatchError

	assert.True(t, errors.As(err, &shapeErr), "expected ShapeMismatchError, got %v", err)
}

func Test_Table_Output_03(t *testing.T) {
	table := mustTable(t, "A.B")
	//
	_, err := table.GetOutput("0x")
	//
	var shapeErr *ShapeMismatchError

	assert.True(t, errors.As(err, &shapeErr), "expected ShapeMismatchError, got %v", err)
}

// Aliases

func Test_Table_Alias_01(t *testing.T) {
	table := mustTable(t, "A.B")
	outputs := table.Outputs()
	//
	assert.Equal(t, nil, table.SetAlias("A", "X"))
	assert.Equal(t, "X", table.Aliases()["A"])
	assert.Equal(t, "B", table.Aliases()["B"])
	// Round trip restores identity, leaving outputs and variables untouched
	table.ClearAliases()
	assert.Equal(t, map[string]string{"A": "A", "B": "B"}, table.Aliases())
	assert.Equal(t, outputs, table.Outputs())
	assert.Equal(t, []string{"A", "B"}, table.Variables())
}

func Test_Table_Alias_02(t *testing.T) {
	table := mustTable(t, "A.B")
	//
	err := table.SetAlias("Z", "X")
	//
	var unknownErr *UnknownVariableError

	assert.True(t, errors.As(err, &unknownErr), "expected UnknownVariableError, got %v", err)
	// Failed mutation leaves aliases untouched
	assert.Equal(t, map[string]string{"A": "A", "B": "B"}, table.Aliases())
}

// Ordering

func Test_Table_Ordering_01(t *testing.T) {
	// A.!B is asymmetric, so swapping columns is observable
	table := mustTable(t, "A.!B")
	outputs := table.Outputs()
	// Canonical order: inputs are (A, B)
	out, err := table.GetOutput("01")
	assert.Equal(t, nil, err)
	assert.Equal(t, uint8(0), out)
	//
	assert.Equal(t, nil, table.SetOrdering([]string{"B", "A"}))
	assert.Equal(t, []string{"B", "A"}, table.Ordering())
	// Display order: inputs are (B, A)
	out, err = table.GetOutput("01")
	assert.Equal(t, nil, err)
	assert.Equal(t, uint8(1), out)
	// Round trip leaves outputs byte-identical
	table.ClearOrdering()
	assert.Equal(t, outputs, table.Outputs())
	assert.True(t, table.Ordering() == nil, "expected unset ordering, got %v", table.Ordering())
	//
	out, err = table.GetOutput("01")
	assert.Equal(t, nil, err)
	assert.Equal(t, uint8(0), out)
}

func Test_Table_Ordering_02(t *testing.T) {
	table := mustTable(t, "A.B")
	//
	checkInvalidOrdering(t, table, []string{"A", "Z"})
	checkInvalidOrdering(t, table, []string{"A"})
	checkInvalidOrdering(t, table, []string{"A", "A"})
	checkInvalidOrdering(t, table, []string{"A", "B", "C"})
	// Failed mutations leave ordering unset
	assert.True(t, table.Ordering() == nil, "expected unset ordering, got %v", table.Ordering())
}

// Rebinding

func Test_Table_SetExpression_01(t *testing.T) {
	table := mustTable(t, "A.B")
	//
	assert.Equal(t, nil, table.SetAlias("A", "X"))
	assert.Equal(t, nil, table.SetOrdering([]string{"B", "A"}))
	// Rebind, discarding presentation state
	assert.Equal(t, nil, table.SetExpression("A+B"))
	assert.Equal(t, "A+B", table.Expression())
	assert.True(t, slices.Equal([]uint8{0, 1, 1, 1}, table.Outputs()),
		"got outputs %v, expected [0 1 1 1]", table.Outputs())
	assert.Equal(t, map[string]string{"A": "A", "B": "B"}, table.Aliases())
	assert.True(t, table.Ordering() == nil, "expected unset ordering, got %v", table.Ordering())
}

func Test_Table_SetExpression_02(t *testing.T) {
	table := mustTable(t, "A.B")
	outputs := table.Outputs()
	// Rebinding to a malformed expression must fail without mutating
	err := table.SetExpression("A+")
	//
	var parseErr *ParseError

	assert.True(t, errors.As(err, &parseErr), "expected ParseError, got %v", err)
	assert.Equal(t, "A.B", table.Expression())
	assert.Equal(t, outputs, table.Outputs())
}

func Test_Table_SetExpression_03(t *testing.T) {
	// New expression may change the number of variables
	table := mustTable(t, "A")
	//
	assert.Equal(t, nil, table.SetExpression("A.(B+C)"))
	assert.Equal(t, []string{"A", "B", "C"}, table.Variables())
	assert.Equal(t, uint(8), table.NumRows())
}

// Merge

func Test_Table_Merge_01(t *testing.T) {
	lhs := mustTable(t, "A.B")
	rhs := mustTable(t, "C+D")
	//
	merged, err := lhs.Merge(rhs, ".")
	assert.Equal(t, nil, err)
	assert.Equal(t, "(A.B).(C+D)", merged.Expression())
	assert.Equal(t, []string{"A", "B", "C", "D"}, merged.Variables())
	assert.Equal(t, uint(16), merged.NumRows())
	// A=B=C=D=1 implies (1^1)^(1v1) = 1
	assert.Equal(t, uint8(1), merged.Outputs()[15])
	// Merged outputs agree with direct construction
	direct := mustTable(t, "(A.B).(C+D)")
	assert.Equal(t, direct.Outputs(), merged.Outputs())
}

func Test_Table_Merge_02(t *testing.T) {
	// Shared variable: B appears on both sides
	lhs := mustTable(t, "A.B")
	rhs := mustTable(t, "B+C")
	//
	merged, err := lhs.Merge(rhs, "+")
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"A", "B", "C"}, merged.Variables())
	assert.Equal(t, []uint8{0, 1, 1, 1, 0, 1, 1, 1}, merged.Outputs())
	// Merged outputs agree with direct construction
	direct := mustTable(t, "(A.B)+(B+C)")
	assert.Equal(t, direct.Outputs(), merged.Outputs())
}

func Test_Table_Merge_03(t *testing.T) {
	// Aliases and ordering are not inherited from either operand
	lhs := mustTable(t, "A.B")
	rhs := mustTable(t, "B+C")
	//
	assert.Equal(t, nil, lhs.SetAlias("A", "X"))
	assert.Equal(t, nil, rhs.SetOrdering([]string{"C", "B"}))
	//
	merged, err := lhs.Merge(rhs, "^")
	assert.Equal(t, nil, err)
	assert.Equal(t, map[string]string{"A": "A", "B": "B", "C": "C"}, merged.Aliases())
	assert.True(t, merged.Ordering() == nil, "expected unset ordering, got %v", merged.Ordering())
}

func Test_Table_Merge_04(t *testing.T) {
	lhs := mustTable(t, "A")
	rhs := mustTable(t, "B")
	//
	for _, op := range []string{"!", "x", "", "&&"} {
		_, err := lhs.Merge(rhs, op)
		//
		var opErr *UnsupportedOperatorError

		assert.True(t, errors.As(err, &opErr), "expected UnsupportedOperatorError for %q, got %v", op, err)
	}
}

// Sum of products

func Test_Table_Sop_01(t *testing.T) {
	table := mustTable(t, "A.B")
	//
	assert.Equal(t, "(A&B)", table.SumOfProducts())
	checkSopRoundTrip(t, table)
}

func Test_Table_Sop_02(t *testing.T) {
	table := mustTable(t, "A^B")
	//
	assert.Equal(t, "(!A&B)+(A&!B)", table.SumOfProducts())
	checkSopRoundTrip(t, table)
}

func Test_Table_Sop_03(t *testing.T) {
	// Contradiction yields the designated always-false constant
	table := mustTable(t, "A.!A")
	//
	assert.Equal(t, "0", table.SumOfProducts())
}

func Test_Table_Sop_04(t *testing.T) {
	// Tautology still yields the full disjunction of minterms
	table := mustTable(t, "A+!A")
	//
	assert.Equal(t, "(!A)+(A)", table.SumOfProducts())
	checkSopRoundTrip(t, table)
}

func Test_Table_Sop_05(t *testing.T) {
	checkSopRoundTrip(t, mustTable(t, "!(A&B)^(C+!A)"))
}

// Invariants

func Test_Table_Invariants_01(t *testing.T) {
	for _, input := range []string{"A", "!A", "A.B", "A+B.C", "!(A^B)#(C.D)"} {
		var (
			table   = mustTable(t, input)
			outputs = table.Outputs()
		)
		//
		assert.Equal(t, uint(1)<<len(table.Variables()), uint(len(outputs)))
		//
		for i, bit := range outputs {
			assert.True(t, bit <= 1, "output %d of %q is not a bit: %d", i, input, bit)
		}
	}
}

// ==================================================================
// Framework
// ==================================================================

func mustTable(t *testing.T, input string) *TruthTable {
	table, err := New(input)
	if err != nil {
		t.Fatalf("unexpected error building table for %q: %v", input, err)
	}
	//
	return table
}

func checkOutputs(t *testing.T, input string, expected ...uint8) {
	table := mustTable(t, input)
	//
	assert.Equal(t, input, table.Expression())
	assert.True(t, slices.Equal(table.Outputs(), expected),
		"got outputs %v for %q, expected %v", table.Outputs(), input, expected)
}

func checkInvalidOrdering(t *testing.T, table *TruthTable, ordering []string) {
	err := table.SetOrdering(ordering)
	//
	var orderingErr *InvalidOrderingError

	assert.True(t, errors.As(err, &orderingErr), "expected InvalidOrderingError for %v, got %v", ordering, err)
}

// Re-parsing a sum-of-products expression must reproduce the original output
// column exactly.
func checkSopRoundTrip(t *testing.T, table *TruthTable) {
	roundTrip := mustTable(t, table.SumOfProducts())
	//
	assert.True(t, slices.Equal(roundTrip.Outputs(), table.Outputs()),
		"sum-of-products %q yields outputs %v, expected %v",
		table.SumOfProducts(), roundTrip.Outputs(), table.Outputs())
}
