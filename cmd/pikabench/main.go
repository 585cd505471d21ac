// Copyright 2023 Google LLC.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command pikabench builds a small left/right-associative arithmetic
// grammar and parses one expression with it, printing either the parsed
// span or the syntax errors pika found. It exists to exercise the
// package's public surface end to end, the way a grammar author would use
// it, not as a general-purpose calculator.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/waywardgeek/pika"
)

func arithmeticGrammar() []pika.RuleSpec {
	digits := pika.NewCharSet().AddRange('0', '9')
	any := pika.NewCharSet().AddRange(0, 0x10FFFF)

	return []pika.RuleSpec{
		{Name: "Digit", Clause: pika.Ch(digits)},
		{Name: "Num", Clause: pika.OneOrMore(pika.Ref("Digit"))},
		{Name: "Paren", Clause: pika.Seq(pika.Lit("(", false), pika.Ref("E"), pika.Lit(")", false))},
		{Name: "Atom", Clause: pika.First(pika.Ref("Num"), pika.Ref("Paren"))},

		// Lowest to highest precedence: + - binds loosest, then * /, then
		// right-associative ^, then atoms.
		{Name: "E", Precedence: 0, Assoc: pika.LeftAssoc,
			Clause: pika.Seq(pika.Ref("E"), pika.First(pika.Lit("+", false), pika.Lit("-", false)), pika.Ref("E"))},
		{Name: "E", Precedence: 1, Assoc: pika.LeftAssoc,
			Clause: pika.Seq(pika.Ref("E"), pika.First(pika.Lit("*", false), pika.Lit("/", false)), pika.Ref("E"))},
		{Name: "E", Precedence: 2, Assoc: pika.RightAssoc,
			Clause: pika.Seq(pika.Ref("E"), pika.Lit("^", false), pika.Ref("E"))},
		{Name: "E", Precedence: 3, Clause: pika.Ref("Atom")},

		{Name: "Program", Clause: pika.Seq(pika.Ref("E"), pika.NotFollowedBy(pika.Ch(any)))},
	}
}

func main() {
	expr := flag.String("expr", "1+2*(3-4)^2", "arithmetic expression to parse")
	trace := flag.Bool("trace", false, "enable structured trace logging of grammar construction and parsing")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	opts := pika.Options{Logger: &logger, Trace: *trace}

	grammar, err := pika.NewGrammar(arithmeticGrammar(), opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pikabench: building grammar:", err)
		os.Exit(1)
	}

	tbl := grammar.Parse(*expr, opts)
	program := grammar.RuleByName("Program")
	if m := tbl.BestMatch(program.TopClause, 0); m != nil && m.End() == len(*expr) {
		fmt.Printf("parsed %q: %s\n", *expr, m)
		return
	}

	fmt.Printf("%q did not parse as Program:\n", *expr)
	for _, se := range grammar.SyntaxErrors(tbl, "Program") {
		fmt.Printf("  syntax error at [%d:%d]: %q\n", se.Start, se.End, se.Text)
	}
	os.Exit(1)
}
