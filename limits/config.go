package limits

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/shaderlink/link"
)

// File is the on-disk shape of a limits TOML document, e.g.:
//
//	profile = "strict-es"
//
//	[limits]
//	max_varying = 32
//	max_texture_image_units = 32
//	max_vertex_generic_attribs = 16
//	max_draw_buffers = 8
//	max_transform_feedback_interleaved_components = 64
//	max_transform_feedback_separate_components = 4
//	max_texture_coord_units = 8
type File struct {
	Profile string      `toml:"profile"`
	Limits  LimitsTable `toml:"limits"`
}

// LimitsTable mirrors link.Context's numeric fields for TOML decoding.
type LimitsTable struct {
	MaxVarying                                int `toml:"max_varying"`
	MaxTextureImageUnits                      int `toml:"max_texture_image_units"`
	MaxVertexGenericAttribs                   int `toml:"max_vertex_generic_attribs"`
	MaxDrawBuffers                            int `toml:"max_draw_buffers"`
	MaxTransformFeedbackInterleavedComponents int `toml:"max_transform_feedback_interleaved_components"`
	MaxTransformFeedbackSeparateComponents    int `toml:"max_transform_feedback_separate_components"`
	MaxTextureCoordUnits                      int `toml:"max_texture_coord_units"`
}

// Load reads a TOML limits file from path and returns the resulting
// link.Context. A zero field in the file falls back to DefaultContext's
// value for that field, so a file only needs to override the limits it
// cares about.
func Load(path string) (*link.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read limits file: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse limits file %s: %w", path, err)
	}

	ctx := link.DefaultContext()
	overlay(&ctx.MaxVarying, f.Limits.MaxVarying)
	overlay(&ctx.MaxTextureImageUnits, f.Limits.MaxTextureImageUnits)
	overlay(&ctx.MaxVertexGenericAttribs, f.Limits.MaxVertexGenericAttribs)
	overlay(&ctx.MaxDrawBuffers, f.Limits.MaxDrawBuffers)
	overlay(&ctx.MaxTransformFeedbackInterleavedComponents, f.Limits.MaxTransformFeedbackInterleavedComponents)
	overlay(&ctx.MaxTransformFeedbackSeparateComponents, f.Limits.MaxTransformFeedbackSeparateComponents)
	overlay(&ctx.MaxTextureCoordUnits, f.Limits.MaxTextureCoordUnits)

	switch f.Profile {
	case "", "compatibility":
		ctx.Profile = link.ProfileCompatibility
	case "strict-es":
		ctx.Profile = link.ProfileStrictES
	default:
		return nil, fmt.Errorf("parse limits file %s: unknown profile %q", path, f.Profile)
	}

	return ctx, nil
}

func overlay(dst *int, override int) {
	if override != 0 {
		*dst = override
	}
}
