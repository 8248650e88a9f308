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

func Test_Parse_01(t *testing.T) {
	checkParse(t, "A", "A", "A")
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "A.B", "(A&B)", "A", "B")
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, "A&B", "(A&B)", "A", "B")
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, "!A", "!A", "A")
}

// AND binds tighter than OR
func Test_Parse_05(t *testing.T) {
	checkParse(t, "A+B.C", "(A+(B&C))", "A", "B", "C")
}

// XOR binds tighter than OR
func Test_Parse_06(t *testing.T) {
	checkParse(t, "A^B+C", "((A^B)+C)", "A", "B", "C")
}

// AND binds tighter than XOR; # spells XOR
func Test_Parse_07(t *testing.T) {
	checkParse(t, "A#B&C", "(A^(B&C))", "A", "B", "C")
}

func Test_Parse_08(t *testing.T) {
	checkParse(t, "(A+B).C", "((A+B)&C)", "A", "B", "C")
}

func Test_Parse_09(t *testing.T) {
	checkParse(t, "!!A", "!!A", "A")
}

func Test_Parse_10(t *testing.T) {
	checkParse(t, "!(A+B)", "!(A+B)", "A", "B")
}

func Test_Parse_11(t *testing.T) {
	checkParse(t, "A + B", "(A+B)", "A", "B")
}

// left associativity
func Test_Parse_12(t *testing.T) {
	checkParse(t, "A.B.C", "((A&B)&C)", "A", "B", "C")
}

// first-appearance order, no duplicates
func Test_Parse_13(t *testing.T) {
	checkParse(t, "B+A+B", "((B+A)+B)", "B", "A")
}

func Test_Parse_14(t *testing.T) {
	checkParse(t, "in_a & in_b", "(in_a&in_b)", "in_a", "in_b")
}

// Malformed token streams

func Test_Parse_20(t *testing.T) {
	checkParseFails(t, "")
}

func Test_Parse_21(t *testing.T) {
	checkParseFails(t, "()")
}

func Test_Parse_22(t *testing.T) {
	checkParseFails(t, "A+")
}

func Test_Parse_23(t *testing.T) {
	checkParseFails(t, "(A")
}

func Test_Parse_24(t *testing.T) {
	checkParseFails(t, "A)")
}

func Test_Parse_25(t *testing.T) {
	checkParseFails(t, "+A")
}

func Test_Parse_26(t *testing.T) {
	checkParseFails(t, "A B")
}

func Test_Parse_27(t *testing.T) {
	checkParseFails(t, "A.(B+)")
}

// Unrecognised characters

func Test_Parse_30(t *testing.T) {
	checkLexFails(t, "A?B")
}

func Test_Parse_31(t *testing.T) {
	checkLexFails(t, "1A")
}

func Test_Parse_32(t *testing.T) {
	checkLexFails(t, "A|B")
}

// Evaluation contract

func Test_Eval_01(t *testing.T) {
	var expr Expr = &Variable{"Z"}
	//
	_, err := expr.Eval(map[string]bool{"A": true})
	//
	var unknownErr *UnknownVariableError

	assert.True(t, errors.As(err, &unknownErr), "expected UnknownVariableError, got %v", err)
}

func Test_Eval_02(t *testing.T) {
	expr, _, err := Parse("!(A^B)")
	assert.Equal(t, nil, err)
	//
	val, err := expr.Eval(map[string]bool{"A": true, "B": true})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, val)
}

// ==================================================================
// Framework
// ==================================================================

func checkParse(t *testing.T, input string, expected string, variables ...string) {
	expr, vars, err := Parse(input)
	//
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", input, err)
	}
	//
	assert.Equal(t, expected, expr.String())
	assert.True(t, slices.Equal(vars, variables), "got variables %v, expected %v", vars, variables)
}

func checkParseFails(t *testing.T, input string) {
	_, _, err := Parse(input)
	//
	var parseErr *ParseError

	assert.True(t, errors.As(err, &parseErr), "expected ParseError for %q, got %v", input, err)
}

func checkLexFails(t *testing.T, input string) {
	_, _, err := Parse(input)
	//
	var lexErr *LexError

	assert.True(t, errors.As(err, &lexErr), "expected LexError for %q, got %v", input, err)
}
