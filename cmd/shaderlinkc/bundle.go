package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gogpu/shaderlink/program"
)

// bundleFile is the on-disk JSON shape of a program bundle: the set of
// compiled units to link plus the transform-feedback/geometry
// configuration that would otherwise come from API calls like
// glTransformFeedbackVaryings.
type bundleFile struct {
	Units []bundleUnit `json:"units"`

	TransformFeedback struct {
		Mode     string   `json:"mode"`
		Varyings []string `json:"varyings"`
	} `json:"transform_feedback"`

	Geometry struct {
		InputType   string `json:"input_type"`
		OutputType  string `json:"output_type"`
		VerticesOut int    `json:"vertices_out"`
	} `json:"geometry"`

	AttribBindings map[string]int `json:"attrib_bindings"`
}

// bundleUnit is one raw GLSL-style source fragment. The CLI always routes bundle
// units through the Compiler collaborator (spec.md §4.1's concatenation
// fallback) rather than accepting pre-compiled register programs from
// JSON -- a JSON bundle has no way to represent an already-compiled
// instruction stream, so there is no "self-contained" unit to short-circuit
// to here.
type bundleUnit struct {
	Stage  string `json:"stage"`
	Source string `json:"source"`
}

// loadBundle reads path and builds an unlinked program.ShaderProgram from
// it, ready to hand to link.Linker.Link.
func loadBundle(path string) (*program.ShaderProgram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}

	var bf bundleFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parse bundle %s: %w", path, err)
	}

	sp := program.NewShaderProgram()

	for _, u := range bf.Units {
		stage, err := parseStage(u.Stage)
		if err != nil {
			return nil, err
		}
		sp.Shaders = append(sp.Shaders, program.CompiledUnit{
			Stage:  stage,
			Source: u.Source,
		})
	}

	for name, slot := range bf.AttribBindings {
		sp.UserAttribBindings[name] = slot
	}

	for _, name := range bf.TransformFeedback.Varyings {
		sp.Feedback.VaryingNames = append(sp.Feedback.VaryingNames, name)
	}
	if bf.TransformFeedback.Mode == "separate" {
		sp.Feedback.Mode = program.FeedbackSeparate
	}

	sp.Geometry.VerticesOut = bf.Geometry.VerticesOut
	sp.Geometry.InputType = parsePrimitive(bf.Geometry.InputType)
	sp.Geometry.OutputType = parsePrimitive(bf.Geometry.OutputType)

	return sp, nil
}

func parseStage(s string) (program.StageType, error) {
	switch s {
	case "vertex":
		return program.StageVertex, nil
	case "geometry":
		return program.StageGeometry, nil
	case "fragment":
		return program.StageFragment, nil
	default:
		return 0, fmt.Errorf("unknown stage %q", s)
	}
}

func parsePrimitive(s string) program.PrimitiveType {
	switch s {
	case "lines":
		return program.PrimLines
	case "triangles":
		return program.PrimTriangles
	case "lines_adjacency":
		return program.PrimLinesAdjacency
	case "triangles_adjacency":
		return program.PrimTrianglesAdjacency
	case "line_strip":
		return program.PrimLineStrip
	case "triangle_strip":
		return program.PrimTriangleStrip
	default:
		return program.PrimPoints
	}
}
