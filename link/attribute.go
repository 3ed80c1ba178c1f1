package link

import (
	"math/bits"
	"strconv"

	"github.com/gogpu/shaderlink/program"
)

// builtinVertAttribNames gives the introspection name published for each
// fixed (non-generic) vertex input register (spec.md §4.4).
var builtinVertAttribNames = map[int]string{
	program.VertAttribPos:      "gl_Vertex",
	program.VertAttribNormal:   "gl_Normal",
	program.VertAttribColor0:   "gl_Color",
	program.VertAttribColor1:   "gl_SecondaryColor",
	program.VertAttribFogCoord: "gl_FogCoord",
}

func builtinVertAttribName(index int) string {
	if name, ok := builtinVertAttribNames[index]; ok {
		return name
	}
	if index >= program.VertAttribTex0 && index <= program.VertAttribTex7 {
		return "gl_MultiTexCoord" + strconv.Itoa(index-program.VertAttribTex0)
	}
	return "gl_Attrib"
}

// resolveAttributes implements spec.md §4.4: assign generic vertex
// attribute slots, honoring any user pre-bindings on prog, and publish the
// attribute table entries (both generic and fixed) used by the vertex
// program.
func resolveAttributes(ctx *Context, prog *program.ShaderProgram, vertex *program.StageProgram, original []program.AttributeParam, originalInputsRead uint32) *LinkError {
	var usedAttributes uint32
	for _, slot := range prog.UserAttribBindings {
		usedAttributes |= 1 << uint(slot)
	}

	// If gl_Vertex is read, generic attribute 0 is unavailable: this avoids
	// the ambiguity of whether attribute 0 means legacy position or a
	// generic attribute (spec.md §4.4).
	if originalInputsRead&(1<<program.VertAttribPos) != 0 {
		usedAttributes |= 1
	}

	attribMap := make(map[int]int) // local generic index -> assigned slot

	var inputsRead uint32

	for idx := range vertex.Instructions {
		inst := &vertex.Instructions[idx]
		for _, src := range inst.SrcRegs() {
			if src.File != program.FileInput {
				continue
			}
			inputsRead |= 1 << uint(src.Index)

			if src.Index < program.VertAttribGeneric0 {
				continue
			}
			k := src.Index - program.VertAttribGeneric0

			slot, ok := attribMap[k]
			if !ok {
				if k >= len(original) {
					return linkErrorf(InputInvalid, "generic vertex attribute %d has no declaration", k)
				}
				decl := original[k]

				if bound, ok := prog.UserAttribBindings[decl.Name]; ok {
					slot = bound
					usedAttributes |= 1 << uint(slot)
				} else {
					slot = nextFreeSlot(usedAttributes, ctx.MaxVertexGenericAttribs)
					if slot < 0 {
						return linkErrorf(LimitExceeded, "Too many vertex attributes")
					}
					usedAttributes |= 1 << uint(slot)
				}

				attribMap[k] = slot
				prog.Attributes.Add(program.Attribute{
					Name:     decl.Name,
					Size:     decl.Size,
					DataType: decl.DataType,
					Slot:     slot,
				})
			}

			src.Index = program.VertAttribGeneric0 + slot
		}
	}

	for i := program.VertAttribPos; i < program.VertAttribGeneric0; i++ {
		if inputsRead&(1<<uint(i)) == 0 {
			continue
		}
		prog.Attributes.Add(program.Attribute{
			Name:     builtinVertAttribName(i),
			Size:     4,
			DataType: program.TypeVec4,
			Slot:     -1,
		})
	}

	return nil
}

// nextFreeSlot returns the lowest unset bit below limit, or -1 if none is
// free (spec.md §4.4 "lowest free slot").
func nextFreeSlot(used uint32, limit int) int {
	free := ^used
	if limit < 32 {
		free &= (1 << uint(limit)) - 1
	}
	if free == 0 {
		return -1
	}
	return bits.TrailingZeros32(free)
}
