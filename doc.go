// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

/*
Package flcd is the front end of the FLCD toy language compiler: it turns a
source file into a program internal form and a symbol table.

Pipeline

Compile runs the three phases of lexical analysis:

	source file --tokenizer--> tokens --lexer--> PIF + symbol table
	                                         \--> unclassified tokens

The tokenizer phase (package tokenizer) reads the file through a fixed size
buffer, splits it on separator characters, then removes comments, joins
signed integer literals and string literals and drops whitespace. A string
literal that is not closed on its own line is a fatal error: Compile returns
it and no analysis happens.

The lexer phase (package lexer) gives each token the type of the first token
class accepting it. Identifiers and constants are interned in the symbol
table (package symtab), whose positions stay valid while the table grows.
Tokens that no class accepts are not fatal. They are collected in
Result.Errors and the internal form is built from the other tokens.

Output

Package pif writes the internal form and the symbol table as text. The
command cmd/flcd ties everything together:

	flcd program.txt pif.out st.out

Finite automata

The identifier and integer constant classes can be backed by finite automata
described in YAML files (package automaton) instead of the built-in regular
expressions:

	ids, err := automaton.Load(afero.NewOsFs(), "identifier.yaml")
	if err != nil {
		// ...
	}
	res, err := flcd.Compile(ctx, "program.txt", flcd.WithIdentifierMatcher(ids))

*/
package flcd
