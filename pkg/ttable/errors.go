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

	"github.com/LiamGraham/truthtable/pkg/util/source"
)

// LexError indicates an unrecognised character was encountered whilst
// tokenising an expression.
type LexError struct {
	*source.SyntaxError
}

// ParseError indicates a malformed token stream, such as an unmatched
// parenthesis, a missing operand or trailing tokens.
type ParseError struct {
	*source.SyntaxError
}

// UnknownVariableError indicates a reference to a name outside a table's
// variable set.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %q", e.Name)
}

// InvalidOrderingError indicates SetOrdering was given something other than a
// permutation of the table's variables.
type InvalidOrderingError struct {
	Ordering []string
}

func (e *InvalidOrderingError) Error() string {
	return fmt.Sprintf("ordering %v is not a permutation of the table variables", e.Ordering)
}

// ShapeMismatchError indicates an input vector of the wrong length, or one
// containing a symbol other than 0 or 1.
type ShapeMismatchError struct {
	Msg string
}

func (e *ShapeMismatchError) Error() string {
	return e.Msg
}

// UnsupportedOperatorError indicates Merge was invoked with a symbol which
// spells no binary connective.
type UnsupportedOperatorError struct {
	Symbol string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q", e.Symbol)
}
