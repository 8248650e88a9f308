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
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"
)

// TruthTable holds the complete enumeration of outputs for a boolean
// expression: one output bit for every assignment of its variables.  Row i
// assigns each variable the corresponding bit of i's binary expansion, with
// the first variable as the most significant bit.  Aliases and ordering are
// presentation state only; they never affect how outputs are stored or
// indexed.
type TruthTable struct {
	// Expression this table was built from.
	expression string
	// Variables in first-appearance order.  This order defines bit
	// significance within row indices.
	variables []string
	// Display labels, keyed by variable.  Defaults to identity.
	aliases map[string]string
	// One output bit per assignment, exactly 2^len(variables) of them.
	outputs *bitset.BitSet
	// Display ordering, or nil when unset.
	ordering []string
}

// New builds the truth table for a given expression.  All outputs are
// computed eagerly, one evaluation per assignment.
func New(expression string) (*TruthTable, error) {
	expr, variables, err := Parse(expression)
	if err != nil {
		return nil, err
	}
	//
	outputs, err := generate(expr, variables)
	if err != nil {
		return nil, err
	}
	//
	return &TruthTable{
		expression: expression,
		variables:  variables,
		aliases:    identityAliases(variables),
		outputs:    outputs,
	}, nil
}

// SetExpression rebinds this table to a new expression, recomputing the
// output column.  Aliases revert to the identity mapping and any display
// ordering is discarded, since the new expression may use different
// variables.  On error the table is left untouched.
func (t *TruthTable) SetExpression(expression string) error {
	expr, variables, err := Parse(expression)
	if err != nil {
		return err
	}
	//
	outputs, err := generate(expr, variables)
	if err != nil {
		return err
	}
	//
	t.expression = expression
	t.variables = variables
	t.aliases = identityAliases(variables)
	t.outputs = outputs
	t.ordering = nil
	//
	return nil
}

// Expression returns the expression this table was built from.  For merged
// tables this is the synthesized parenthesized combination.
func (t *TruthTable) Expression() string {
	return t.expression
}

// Variables returns the table's variables in canonical order.
func (t *TruthTable) Variables() []string {
	return slices.Clone(t.variables)
}

// Aliases returns the current display label for every variable.
func (t *TruthTable) Aliases() map[string]string {
	return maps.Clone(t.aliases)
}

// Ordering returns the current display ordering, or nil when unset.
func (t *TruthTable) Ordering() []string {
	return slices.Clone(t.ordering)
}

// NumRows returns the number of rows in this table, i.e. 2^n for n
// variables.
func (t *TruthTable) NumRows() uint {
	return uint(1) << uint(len(t.variables))
}

// Outputs returns the output column in canonical row order.
func (t *TruthTable) Outputs() []uint8 {
	outputs := make([]uint8, t.NumRows())
	//
	for i := range outputs {
		outputs[i] = boolToBit(t.outputs.Test(uint(i)))
	}
	//
	return outputs
}

// GetRow returns the input bits (canonical order, first variable most
// significant) and output of a given row.  Rows are zero-indexed.
func (t *TruthTable) GetRow(row uint) ([]uint8, uint8, error) {
	if row >= t.NumRows() {
		return nil, 0, fmt.Errorf("row %d out of bounds for table of %d rows", row, t.NumRows())
	}
	//
	n := uint(len(t.variables))
	inputs := make([]uint8, n)
	//
	for k := uint(0); k < n; k++ {
		inputs[k] = uint8((row >> (n - 1 - k)) & 1)
	}
	//
	return inputs, boolToBit(t.outputs.Test(row)), nil
}

// GetOutput returns the output for a given input vector, supplied as a
// compact string of '0'/'1' characters, one per variable.  Bits are read in
// the current display ordering if one is set, and in canonical order
// otherwise; either way they are permuted back into canonical order before
// indexing the output column.
func (t *TruthTable) GetOutput(inputs string) (uint8, error) {
	var (
		n       = len(t.variables)
		display = t.displayOrder()
		index   = uint(0)
	)
	//
	if len(inputs) != n {
		return 0, &ShapeMismatchError{fmt.Sprintf("expected %d input bits, got %d", n, len(inputs))}
	}
	//
	for k := 0; k < n; k++ {
		var bit uint
		//
		switch inputs[k] {
		case '0':
			bit = 0
		case '1':
			bit = 1
		default:
			return 0, &ShapeMismatchError{fmt.Sprintf("input symbol %q is not a bit", string(inputs[k]))}
		}
		// Significance determined by canonical position of the k-th
		// displayed variable.
		pos := slices.Index(t.variables, display[k])
		index |= bit << uint(n-1-pos)
	}
	//
	return boolToBit(t.outputs.Test(index)), nil
}

// SetAlias sets the display label of a given variable.  Outputs, variables
// and ordering are unaffected.
func (t *TruthTable) SetAlias(variable string, alias string) error {
	if !slices.Contains(t.variables, variable) {
		return &UnknownVariableError{variable}
	}
	//
	t.aliases[variable] = alias
	//
	return nil
}

// ClearAliases resets every alias to its variable's own name.
func (t *TruthTable) ClearAliases() {
	t.aliases = identityAliases(t.variables)
}

// SetOrdering sets the display ordering, which must be a permutation of the
// table's variables.  The ordering affects presentation and how GetOutput
// interprets its input vector; stored outputs are untouched.
func (t *TruthTable) SetOrdering(ordering []string) error {
	if len(ordering) != len(t.variables) {
		return &InvalidOrderingError{ordering}
	}
	//
	seen := make(map[string]bool, len(ordering))
	//
	for _, v := range ordering {
		if seen[v] || !slices.Contains(t.variables, v) {
			return &InvalidOrderingError{ordering}
		}
		//
		seen[v] = true
	}
	//
	t.ordering = slices.Clone(ordering)
	//
	return nil
}

// ClearOrdering unsets the display ordering, reverting to canonical order.
func (t *TruthTable) ClearOrdering() {
	t.ordering = nil
}

// SumOfProducts derives a disjunction of minterms from the output column:
// one conjunctive term per row whose output is 1, with every variable
// present and negated wherever its bit in that row is 0.  An all-zero output
// column yields the constant "0".
func (t *TruthTable) SumOfProducts() string {
	var (
		n     = uint(len(t.variables))
		terms []string
	)
	//
	for i, ok := t.outputs.NextSet(0); ok; i, ok = t.outputs.NextSet(i + 1) {
		literals := make([]string, n)
		//
		for k := uint(0); k < n; k++ {
			if (i>>(n-1-k))&1 == 1 {
				literals[k] = t.variables[k]
			} else {
				literals[k] = "!" + t.variables[k]
			}
		}
		//
		terms = append(terms, "("+strings.Join(literals, And.Symbol())+")")
	}
	//
	if len(terms) == 0 {
		return "0"
	}
	//
	return strings.Join(terms, Or.Symbol())
}

// Merge combines this table with another under a binary connective,
// producing the table of "(this) op (other)".  The result's variables are
// this table's followed by the other's new ones, each in original order.
// Outputs are computed by indexing into the two existing output columns via
// sub-assignments, not by re-evaluating either expression.  Aliases and
// ordering on the result are reset to defaults.
func (t *TruthTable) Merge(other *TruthTable, operator string) (*TruthTable, error) {
	op, ok := ConnectiveOf(operator)
	if !ok {
		return nil, &UnsupportedOperatorError{operator}
	}
	// Union of variables, preserving first-appearance order.
	variables := slices.Clone(t.variables)
	//
	for _, v := range other.variables {
		if !slices.Contains(variables, v) {
			variables = append(variables, v)
		}
	}
	//
	var (
		n       = uint(len(variables))
		rows    = uint(1) << n
		outputs = bitset.New(rows)
		// Canonical position of every combined variable.
		position = make(map[string]uint, n)
	)
	//
	for k, v := range variables {
		position[v] = uint(k)
	}
	// Index into an operand's output column for the sub-assignment of a
	// combined row restricted to the operand's variables.
	subIndex := func(row uint, vars []string) uint {
		var (
			m     = uint(len(vars))
			index = uint(0)
		)
		//
		for k, v := range vars {
			bit := (row >> (n - 1 - position[v])) & 1
			index |= bit << (m - 1 - uint(k))
		}
		//
		return index
	}
	//
	for i := uint(0); i < rows; i++ {
		lhs := t.outputs.Test(subIndex(i, t.variables))
		rhs := other.outputs.Test(subIndex(i, other.variables))
		outputs.SetTo(i, op.Apply(lhs, rhs))
	}
	//
	// Synthesized form retains the operator spelling as given.
	expression := "(" + t.expression + ")" + operator + "(" + other.expression + ")"
	//
	log.Debugf("merged %d x %d rows into %d", t.NumRows(), other.NumRows(), rows)
	//
	return &TruthTable{
		expression: expression,
		variables:  variables,
		aliases:    identityAliases(variables),
		outputs:    outputs,
	}, nil
}

func (t *TruthTable) String() string {
	return fmt.Sprintf("TruthTable: expression=%q, variables=%v, outputs=%v",
		t.expression, t.variables, t.Outputs())
}

// displayOrder returns the ordering used for presentation and input-vector
// interpretation: the explicit ordering when set, else canonical order.
func (t *TruthTable) displayOrder() []string {
	if t.ordering != nil {
		return t.ordering
	}
	//
	return t.variables
}

// generate enumerates every assignment of the given variables in canonical
// row order, evaluating the expression once for each.
func generate(expr Expr, variables []string) (*bitset.BitSet, error) {
	var (
		n          = uint(len(variables))
		rows       = uint(1) << n
		outputs    = bitset.New(rows)
		assignment = make(map[string]bool, n)
	)
	//
	for i := uint(0); i < rows; i++ {
		for k, v := range variables {
			assignment[v] = (i>>(n-1-uint(k)))&1 == 1
		}
		//
		bit, err := expr.Eval(assignment)
		if err != nil {
			return nil, err
		}
		//
		outputs.SetTo(i, bit)
	}
	//
	log.Debugf("generated %d outputs over %d variables", rows, n)
	//
	return outputs, nil
}

func identityAliases(variables []string) map[string]string {
	aliases := make(map[string]string, len(variables))
	//
	for _, v := range variables {
		aliases[v] = v
	}
	//
	return aliases
}

func boolToBit(val bool) uint8 {
	if val {
		return 1
	}
	//
	return 0
}
