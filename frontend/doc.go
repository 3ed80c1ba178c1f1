// Package frontend provides the default implementation of link.Compiler,
// the collaborator link.selectMainShader falls back to when a stage has no
// single compiled unit that is already self-contained (spec.md §4.1).
//
// Lexing, parsing, and code generation for the shading language are an
// explicit linker non-goal (spec.md §1): the linker core never imports
// this package, only the link.Compiler interface it implements, so a real
// front end can be swapped in without touching package link. This default
// implementation is deliberately minimal -- plain text scanning rather
// than a grammar -- since it only has to answer whether concatenated
// source compiled, defines main, and has unresolved references.
package frontend
