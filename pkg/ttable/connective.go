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

// Connective identifies one of the binary boolean operators.
type Connective uint8

// And represents logical conjunction.
const And Connective = 0

// Or represents logical disjunction.
const Or Connective = 1

// Xor represents exclusive disjunction.
const Xor Connective = 2

// symbols maps every accepted operator spelling onto its connective.  This is
// the single lookup shared by the lexer, Merge and printed forms.  The first
// spelling listed for a connective is its canonical symbol.
var symbols = []struct {
	symbol string
	conn   Connective
}{
	{"&", And},
	{".", And},
	{"+", Or},
	{"^", Xor},
	{"#", Xor},
}

// ConnectiveOf resolves an operator symbol to its connective, returning false
// if the symbol spells no known connective.
func ConnectiveOf(symbol string) (Connective, bool) {
	for _, s := range symbols {
		if s.symbol == symbol {
			return s.conn, true
		}
	}
	//
	return 0, false
}

// Symbol returns the canonical spelling of this connective.
func (c Connective) Symbol() string {
	for _, s := range symbols {
		if s.conn == c {
			return s.symbol
		}
	}
	//
	panic("unknown connective")
}

// Apply computes the truth function of this connective.
func (c Connective) Apply(lhs bool, rhs bool) bool {
	switch c {
	case And:
		return lhs && rhs
	case Or:
		return lhs || rhs
	case Xor:
		return lhs != rhs
	}
	//
	panic("unknown connective")
}
