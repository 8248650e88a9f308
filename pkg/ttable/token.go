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
	"github.com/LiamGraham/truthtable/pkg/util"
	"github.com/LiamGraham/truthtable/pkg/util/source"
	"github.com/LiamGraham/truthtable/pkg/util/source/lex"
)

// END_OF signals "end of input"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LPAREN signals "left parenthesis"
const LPAREN uint = 2

// RPAREN signals "right parenthesis"
const RPAREN uint = 3

// IDENTIFIER signals a variable name.
const IDENTIFIER uint = 4

// AND_OP signals conjunction, spelled "&" or ".".
const AND_OP uint = 5

// OR_OP signals disjunction, spelled "+".
const OR_OP uint = 6

// XOR_OP signals exclusive disjunction, spelled "^" or "#".
const XOR_OP uint = 7

// NOT_OP signals negation, spelled "!".
const NOT_OP uint = 8

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t')))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LPAREN),
	lex.Rule(lex.Unit(')'), RPAREN),
	lex.Rule(lex.Unit('&'), AND_OP),
	lex.Rule(lex.Unit('.'), AND_OP),
	lex.Rule(lex.Unit('+'), OR_OP),
	lex.Rule(lex.Unit('^'), XOR_OP),
	lex.Rule(lex.Unit('#'), XOR_OP),
	lex.Rule(lex.Unit('!'), NOT_OP),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex tokenises a given expression, returning the token sequence with
// whitespace removed.  The final token is always END_OF.
func Lex(srcfile *source.File) ([]lex.Token, error) {
	lexer := lex.NewLexer[rune](srcfile.Contents(), rules...)
	// Lex as many tokens as possible
	tokens := lexer.Collect()
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := int(lexer.Index()), int(lexer.Index()+lexer.Remaining())
		err := srcfile.SyntaxError(source.NewSpan(start, end), "unrecognised character")
		//
		return nil, &LexError{err}
	}
	// Remove any whitespace
	return util.RemoveMatching(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE }), nil
}
