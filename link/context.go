package link

import "github.com/gogpu/shaderlink/program"

// APIProfile selects which cross-stage requirements the validator enforces
// (spec.md §4.6).
type APIProfile uint8

const (
	// ProfileCompatibility allows a program with only one of
	// vertex/fragment present (e.g. vertex-only transform-feedback
	// programs).
	ProfileCompatibility APIProfile = iota

	// ProfileStrictES requires both a vertex and a fragment stage.
	ProfileStrictES
)

// Context carries the enclosing graphics context's configuration
// (spec.md §6): resource limits and the API profile. A Context is
// read-mostly configuration shared across link attempts; it is not safe
// for concurrent Link calls that race the *same* ShaderProgram, but
// distinct programs may link concurrently against the same Context
// (spec.md §5).
type Context struct {
	MaxVarying                                int
	MaxTextureImageUnits                      int
	MaxVertexGenericAttribs                   int
	MaxDrawBuffers                            int
	MaxTransformFeedbackInterleavedComponents int
	MaxTransformFeedbackSeparateComponents    int
	MaxTextureCoordUnits                      int

	Profile APIProfile
}

// DefaultContext returns a Context with limits typical of a desktop OpenGL
// 3.3 implementation.
func DefaultContext() *Context {
	return &Context{
		MaxVarying:                                32,
		MaxTextureImageUnits:                      32,
		MaxVertexGenericAttribs:                   16,
		MaxDrawBuffers:                             8,
		MaxTransformFeedbackInterleavedComponents: 64,
		MaxTransformFeedbackSeparateComponents:    4,
		MaxTextureCoordUnits:                      8,
		Profile:                                   ProfileCompatibility,
	}
}

// CompileResult is what the front-end Compiler collaborator reports back
// about a (re)compiled source unit (spec.md §6).
type CompileResult struct {
	CompileStatus     bool
	DefinesMain       bool
	HasUnresolvedRefs bool
	Program           *program.StageProgram
}

// Compiler is the external compiler front-end collaborator consumed by
// main-shader selection (spec.md §4.1) when no single compiled unit of a
// stage is both self-contained and defines main. The linker itself never
// lexes, parses, or type-checks shading-language source; it only asks the
// Compiler to (re-)compile concatenated source and reports the three facts
// it needs back.
type Compiler interface {
	Compile(stage program.StageType, source string) (CompileResult, error)
}

// DriverNotifier is the per-stage driver callback consumed after a
// successful link (spec.md §6, §4.7 NOTIFY). It returns false to reject a
// stage program, which fails the overall link with DriverRejected unless a
// more specific diagnostic was already recorded.
type DriverNotifier interface {
	Notify(stage program.StageType, prog *program.StageProgram) bool
}

// NotifierFunc adapts a plain function to DriverNotifier.
type NotifierFunc func(stage program.StageType, prog *program.StageProgram) bool

// Notify calls f.
func (f NotifierFunc) Notify(stage program.StageType, prog *program.StageProgram) bool {
	return f(stage, prog)
}
