package program

// Fixed register-file sizes. These bound the INPUT/OUTPUT index space for
// each stage regardless of the smaller, context-configurable limits
// (Context.MaxVarying, Context.MaxTextureCoordUnits, ...) the linker
// enforces at link time -- the array layout itself doesn't shrink, only
// how much of it a given context allows using.
const (
	MaxTextureCoordUnitsHW = 8
	MaxVaryingHW           = 32
	MaxDrawBuffersHW       = 8
	MaxGenericAttribsHW    = 16
	MaxTextureImageUnitsHW = 32
)

// Vertex-stage input (attribute) register indices.
const (
	VertAttribPos = iota
	VertAttribNormal
	VertAttribColor0
	VertAttribColor1
	VertAttribFogCoord
	VertAttribTex0
)

// VertAttribTex7 is the last of the fixed texture-coordinate attribute slots.
const VertAttribTex7 = VertAttribTex0 + MaxTextureCoordUnitsHW - 1

// VertAttribGeneric0 is the first generic (user) vertex attribute index;
// spec.md §4.4's "first-generic-attribute-index".
const VertAttribGeneric0 = VertAttribTex7 + 1

// Vertex-stage output (result) register indices.
const (
	VertResultPos = iota // gl_Position; must be written (invariant 4)
	VertResultColor0
	VertResultColor1
	VertResultFogc
	VertResultTex0
)

const VertResultTex7 = VertResultTex0 + MaxTextureCoordUnitsHW - 1

// VertResultVar0 is the first vertex-result-varying index (spec.md §4.2).
const VertResultVar0 = VertResultTex7 + 1

// Fragment-stage input (attribute) register indices.
const (
	FragAttribPos = iota
	FragAttribColor0
	FragAttribFogc
	FragAttribTex0
)

const FragAttribTex7 = FragAttribTex0 + MaxTextureCoordUnitsHW - 1

// FragAttribVar0 is the first fragment-attrib-varying index (spec.md §4.2).
const FragAttribVar0 = FragAttribTex7 + 1

// Fragment-stage output (result) register indices.
const (
	FragResultColor = iota // the scalar gl_FragColor output
	FragResultDepth
	FragResultData0 // first of the indexed gl_FragData[] outputs
)

// Geometry-stage input (attribute) register indices: geometry only reads
// the varyings written by the vertex stage.
const GeomAttribVar0 = 0

// Geometry-stage output (result) register indices.
const (
	GeomResultPos = iota
	GeomResultTex0
)

const GeomResultTex7 = GeomResultTex0 + MaxTextureCoordUnitsHW - 1

// GeomResultVar0 is the geometry varying-output base (spec.md §4.2).
const GeomResultVar0 = GeomResultTex7 + 1
