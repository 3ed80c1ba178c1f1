// Package link implements the shader program linker: it combines
// independently-compiled per-stage register programs (vertex, geometry,
// fragment) into one linked program whose stages agree on shared storage.
//
// # Pipeline
//
// Link runs a fixed sequence of passes over a clone of each selected stage
// program:
//
//	select main shaders -> clone -> merge varyings -> merge uniforms/samplers
//	-> resolve attributes -> recompute metadata -> validate -> notify driver
//
// Any pass may fail the link; the first failure wins and is recorded as a
// *LinkError, surfaced on the program as LinkStatus=false and a non-empty
// InfoLog.
//
// # Collaborators
//
// The linker consumes two pluggable collaborators it does not implement
// itself: Compiler (re-invoked only when per-stage concatenation is needed
// to resolve a missing "main", see mainshader.go) and DriverNotifier (the
// backend hook called once per linked stage on success). Package frontend
// provides a default Compiler that answers these questions by scanning
// GLSL-style source text.
package link
