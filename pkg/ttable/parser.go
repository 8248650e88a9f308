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
	"github.com/LiamGraham/truthtable/pkg/util/source"
	"github.com/LiamGraham/truthtable/pkg/util/source/lex"
)

// Parse a given input string into an expression tree, along with the
// variables it references in order of first appearance (left-to-right over
// the token stream).  Precedence is, tightest first: NOT > AND > XOR > OR,
// with parenthesized sub-expressions resetting precedence.
func Parse(input string) (Expr, []string, error) {
	srcfile := source.NewSourceFile([]byte(input))
	//
	tokens, err := Lex(srcfile)
	if err != nil {
		return nil, nil, err
	}
	//
	parser := &parser{srcfile, tokens, 0}
	// Parse term
	expr, err := parser.parseOr()
	if err != nil {
		return nil, nil, err
	}
	// Check all parsed
	if !parser.done() {
		return nil, nil, parser.error(parser.lookahead(), "unexpected trailing token")
	}
	// Collect variables in first-appearance order
	variables := parser.variables()
	//
	if len(variables) == 0 {
		return nil, nil, parser.error(tokens[len(tokens)-1], "expression contains no variables")
	}
	// All good!
	return expr, variables, nil
}

// Parser represents a parser in the process of parsing a given token stream
// into an expression tree.
type parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

func (p *parser) parseOr() (Expr, error) {
	expr, err := p.parseXor()
	//
	for err == nil && p.follows(OR_OP) {
		p.expect(OR_OP)
		//
		rhs, rerr := p.parseXor()
		if rerr != nil {
			return nil, rerr
		}
		//
		expr = &Binary{Or, expr, rhs}
	}
	//
	return expr, err
}

func (p *parser) parseXor() (Expr, error) {
	expr, err := p.parseAnd()
	//
	for err == nil && p.follows(XOR_OP) {
		p.expect(XOR_OP)
		//
		rhs, rerr := p.parseAnd()
		if rerr != nil {
			return nil, rerr
		}
		//
		expr = &Binary{Xor, expr, rhs}
	}
	//
	return expr, err
}

func (p *parser) parseAnd() (Expr, error) {
	expr, err := p.parseNot()
	//
	for err == nil && p.follows(AND_OP) {
		p.expect(AND_OP)
		//
		rhs, rerr := p.parseNot()
		if rerr != nil {
			return nil, rerr
		}
		//
		expr = &Binary{And, expr, rhs}
	}
	//
	return expr, err
}

func (p *parser) parseNot() (Expr, error) {
	if p.match(NOT_OP) {
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		//
		return &Not{arg}, nil
	}
	//
	return p.parseAtom()
}

func (p *parser) parseAtom() (Expr, error) {
	token := p.lookahead()
	//
	switch token.Kind {
	case LPAREN:
		return p.parseParenthesized()
	case IDENTIFIER:
		id := p.expect(IDENTIFIER)
		return &Variable{p.string(id)}, nil
	case RPAREN:
		return nil, p.error(token, "empty sub-expression")
	}
	//
	return nil, p.error(token, "expected variable or '('")
}

func (p *parser) parseParenthesized() (Expr, error) {
	p.expect(LPAREN)
	//
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	//
	if !p.match(RPAREN) {
		return nil, p.error(p.lookahead(), "expected ')'")
	}
	//
	return expr, nil
}

// Variables returns the identifiers of the token stream in first-appearance
// order.
func (p *parser) variables() []string {
	var (
		variables []string
		seen      = make(map[string]bool)
	)
	//
	for _, token := range p.tokens {
		if token.Kind == IDENTIFIER {
			name := p.string(token)
			//
			if !seen[name] {
				seen[name] = true
				variables = append(variables, name)
			}
		}
	}
	//
	return variables
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *parser) done() bool {
	return p.lookahead().Kind == END_OF
}

// Follows checks whether one of the given token kinds is next.
func (p *parser) follows(kind uint) bool {
	return p.lookahead().Kind == kind
}

// Lookahead returns the next token.  This must exist because END_OF is always
// appended at the end of the token stream.
func (p *parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Get the text representing the given token as a string.
func (p *parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

func (p *parser) error(token lex.Token, msg string) error {
	return &ParseError{p.srcfile.SyntaxError(token.Span, msg)}
}
