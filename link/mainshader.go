package link

import (
	"strconv"
	"strings"

	"github.com/gogpu/shaderlink/program"
)

// selectMainShader implements spec.md §4.1: find or synthesize the single
// compiled unit of stage that both compiled cleanly and defines main.
//
// If an attached unit of stage is self-contained -- compiled, defines
// main, and has no unresolved references -- the first such unit is used
// directly.
// Otherwise every unit of the stage is concatenated into one source buffer
// and handed to compiler for a fresh compile; that recompiled unit must
// define main and resolve cleanly or the link fails.
func selectMainShader(prog *program.ShaderProgram, stage program.StageType, compiler Compiler) (*program.CompiledUnit, *LinkError) {
	units := prog.UnitsOfStage(stage)
	if len(units) == 0 {
		return nil, nil
	}

	for _, u := range units {
		if u.CompileStatus && u.DefinesMain && !u.HasUnresolvedRefs {
			return u, nil
		}
	}

	source := concatSources(units, prog, stage)

	result, err := compiler.Compile(stage, source)
	if err != nil {
		return nil, linkErrorf(UnresolvedSymbol, "%s shader: %v", stage, err)
	}
	if !result.CompileStatus {
		return nil, linkErrorf(UnresolvedSymbol, "%s shader failed to compile after concatenation", stage)
	}
	if !result.DefinesMain {
		return nil, linkErrorf(UnresolvedSymbol, "%s shader: linked result does not define main", stage)
	}
	if result.HasUnresolvedRefs {
		return nil, linkErrorf(UnresolvedSymbol, "%s shader: unresolved symbols after concatenation", stage)
	}

	merged := &program.CompiledUnit{
		Stage:             stage,
		Source:            source,
		CompileStatus:     true,
		DefinesMain:       true,
		HasUnresolvedRefs: false,
		Program:           result.Program,
	}
	return merged, nil
}

// concatSources joins every unit's source into one compilation unit,
// stripping secondary #version directives and, for the geometry stage,
// prepending the gl_VerticesIn constant (spec.md §4.1).
func concatSources(units []*program.CompiledUnit, prog *program.ShaderProgram, stage program.StageType) string {
	var b strings.Builder

	if stage == program.StageGeometry {
		n := program.VerticesPerPrimitive(prog.Geometry.InputType)
		b.WriteString("const int gl_VerticesIn = ")
		b.WriteString(strconv.Itoa(n))
		b.WriteString(";\n")
	}

	for i, u := range units {
		src := u.Source
		if i > 0 {
			src = suppressVersionDirectives(src)
		}
		b.WriteString(src)
		if !strings.HasSuffix(src, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// suppressVersionDirectives comments out every #version line in src; only
// the first concatenated unit's #version directive, if any, is kept
// (spec.md §4.1 "strip secondary #version directives").
func suppressVersionDirectives(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#version") {
			lines[i] = "// " + line
		}
	}
	return strings.Join(lines, "\n")
}
