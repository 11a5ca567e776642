// Package compiler provides the front end for a small C subset: a lexer,
// a recursive-descent parser with precedence climbing, and the AST it builds.
//
// Pipeline: C source → Lex → Parse → *Program
package compiler
