package frontend

import (
	"regexp"
	"strings"

	"github.com/gogpu/shaderlink/link"
	"github.com/gogpu/shaderlink/program"
)

// Compiler is the default link.Compiler collaborator: it answers the
// concatenation fallback's three questions (spec.md §4.1) -- did the
// recompiled source compile, does it define main, are any references
// still unresolved -- by scanning source text rather than running a real
// shading-language front end. A production driver replaces this with one
// wired to its actual compiler and code generator; lexing, parsing, and
// code generation are explicitly out of the linker's own scope (spec.md
// §1), so this package carries none of that weight itself.
type Compiler struct{}

// New returns the default Compiler.
func New() *Compiler {
	return &Compiler{}
}

// unresolvedMarker is the convention a caller stamps into concatenated
// source to flag that it still references an external symbol. A text scan
// has no real symbol table to check against, so this stands in for it.
const unresolvedMarker = "#pragma unresolved"

// uniformDecl matches a GLSL-style "uniform <type> <name>;" declaration,
// the only shape Compile needs to recognize to give the uniform/sampler
// merger (package link) real parameter-list entries to merge.
var uniformDecl = regexp.MustCompile(`\buniform\s+(\w+)\s+(\w+)\s*(\[\s*\d+\s*\])?\s*;`)

// Compile implements link.Compiler. CompileStatus fails only on empty
// source or mismatched braces/parens -- the cheapest syntax check that
// doesn't require a grammar. DefinesMain looks for a GLSL-style "void
// main(" entry point; HasUnresolvedRefs looks for unresolvedMarker.
func (c *Compiler) Compile(stage program.StageType, source string) (link.CompileResult, error) {
	if strings.TrimSpace(source) == "" {
		return link.CompileResult{CompileStatus: false}, nil
	}
	if !bracesBalanced(source) {
		return link.CompileResult{CompileStatus: false}, nil
	}

	return link.CompileResult{
		CompileStatus:     true,
		DefinesMain:       definesMain(source),
		HasUnresolvedRefs: strings.Contains(source, unresolvedMarker),
		Program:           buildStageProgram(stage, source),
	}, nil
}

// mainEntryPoint matches a GLSL-style "void main(" entry point declaration.
var mainEntryPoint = regexp.MustCompile(`\bvoid\s+main\s*\(`)

// definesMain reports whether source contains a GLSL-style main entry point.
func definesMain(source string) bool {
	return mainEntryPoint.MatchString(source)
}

// bracesBalanced is the minimal stand-in for a real syntax check: every
// '{'/'(' closes before end of source.
func bracesBalanced(source string) bool {
	depth := 0
	for _, r := range source {
		switch r {
		case '{', '(':
			depth++
		case '}', ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// glslSamplerTypes names the GLSL sampler type keywords recognized by
// uniformDecl's scan.
var glslSamplerTypes = map[string]program.DataType{
	"sampler2D":       program.TypeSampler2D,
	"samplerCube":     program.TypeSamplerCube,
	"sampler2DShadow": program.TypeSampler2DShadow,
}

// glslUniformTypes names the non-sampler GLSL type keywords uniformDecl
// recognizes, each mapped to its DataType (whose SizeInFloats gives the
// parameter's size).
var glslUniformTypes = map[string]program.DataType{
	"float": program.TypeFloat,
	"int":   program.TypeInt,
	"bool":  program.TypeBool,
	"vec2":  program.TypeVec2,
	"vec3":  program.TypeVec3,
	"vec4":  program.TypeVec4,
	"mat2":  program.TypeMat2,
	"mat3":  program.TypeMat3,
	"mat4":  program.TypeMat4,
}

// buildStageProgram scans source for uniform/sampler declarations and
// records them as stage-local parameters, so a concatenation-recompiled
// source still gives the uniform/sampler merger real entries to operate
// on. The instruction stream itself is just a terminating OpEnd: turning
// declared uniforms into an actual register program is the
// target-specific code generation the linker leaves to the driver
// backend (spec.md §1 Non-goals).
func buildStageProgram(stage program.StageType, source string) *program.StageProgram {
	sp := program.NewStageProgram(stage)

	samplerUnit := 0
	for _, m := range uniformDecl.FindAllStringSubmatch(source, -1) {
		typeName, name := m[1], m[2]

		if dt, ok := glslSamplerTypes[typeName]; ok {
			sp.Parameters.Add(program.Param{
				Name:     name,
				Kind:     program.ParamSampler,
				Size:     1,
				DataType: dt,
				Used:     true,
				Value:    [4]float32{float32(samplerUnit)},
			})
			samplerUnit++
			continue
		}

		dt, ok := glslUniformTypes[typeName]
		if !ok {
			dt = program.TypeFloat
		}
		sp.Parameters.Add(program.Param{
			Name:     name,
			Kind:     program.ParamUniform,
			Size:     dt.SizeInFloats(),
			DataType: dt,
			Used:     true,
		})
	}

	sp.Instructions = []program.Instruction{{Opcode: program.OpEnd}}
	return sp
}
