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

// Expr represents a node in the syntax tree of a boolean expression.  Trees
// are immutable once built.
type Expr interface {
	// Eval computes the value of this expression under a given assignment of
	// variables to bits.  Referencing a name outside the assignment produces
	// an UnknownVariableError.
	Eval(assignment map[string]bool) (bool, error)
	// String returns a parenthesized form of this expression using canonical
	// operator symbols.
	String() string
}

// Variable is a leaf node referencing a named input.
type Variable struct {
	Name string
}

// Not negates its operand.
type Not struct {
	Arg Expr
}

// Binary applies a connective to two operands.
type Binary struct {
	Op  Connective
	Lhs Expr
	Rhs Expr
}

// Eval looks up the bit assigned to this variable.
func (e *Variable) Eval(assignment map[string]bool) (bool, error) {
	val, ok := assignment[e.Name]
	//
	if !ok {
		return false, &UnknownVariableError{Name: e.Name}
	}
	//
	return val, nil
}

func (e *Variable) String() string {
	return e.Name
}

// Eval computes the complement of the operand.
func (e *Not) Eval(assignment map[string]bool) (bool, error) {
	val, err := e.Arg.Eval(assignment)
	if err != nil {
		return false, err
	}
	//
	return !val, nil
}

func (e *Not) String() string {
	return "!" + e.Arg.String()
}

// Eval applies the connective to both evaluated operands.
func (e *Binary) Eval(assignment map[string]bool) (bool, error) {
	lhs, err := e.Lhs.Eval(assignment)
	if err != nil {
		return false, err
	}
	//
	rhs, err := e.Rhs.Eval(assignment)
	if err != nil {
		return false, err
	}
	//
	return e.Op.Apply(lhs, rhs), nil
}

func (e *Binary) String() string {
	return "(" + e.Lhs.String() + e.Op.Symbol() + e.Rhs.String() + ")"
}
