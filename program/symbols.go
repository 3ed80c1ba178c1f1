package program

import "fmt"

// AbsentParam marks a stage's parameter index as not participating in a
// given program-wide uniform or varying entry.
const AbsentParam = -1

// Param is one entry of a stage's parameter list: a uniform, sampler,
// varying, or built-in state variable the stage's instructions reference.
type Param struct {
	Name     string
	Kind     ParamKind
	Size     int // element size in floats
	DataType DataType
	Flags    ParamFlags
	Used     bool

	// Value holds the parameter's constant payload. For samplers, Value[0]
	// is the stage-local sampler number before remapping, and is rewritten
	// in place to the program-wide sampler unit by the uniform/sampler
	// merger (spec.md §4.3).
	Value [4]float32
}

// ParameterList is the ordered, stage-local list of parameters a compiled
// unit references.
type ParameterList struct {
	Params []Param
}

// IndexOf returns the index of the named parameter, or -1 if absent.
func (pl *ParameterList) IndexOf(name string) int {
	if pl == nil {
		return -1
	}
	for i := range pl.Params {
		if pl.Params[i].Name == name {
			return i
		}
	}
	return -1
}

// Add appends a new parameter and returns its index.
func (pl *ParameterList) Add(p Param) int {
	pl.Params = append(pl.Params, p)
	return len(pl.Params) - 1
}

// Clone returns a deep copy of pl.
func (pl *ParameterList) Clone() *ParameterList {
	if pl == nil {
		return nil
	}
	out := &ParameterList{Params: make([]Param, len(pl.Params))}
	copy(out.Params, pl.Params)
	return out
}

// Varying is one entry of the program-wide varying table (spec.md §3).
type Varying struct {
	Name     string
	Size     int
	DataType DataType
	Flags    ParamFlags
}

// VaryingTable is the program-wide, ordered, name-unique list of varyings.
// Position in the list is the linked varying slot.
type VaryingTable struct {
	entries []Varying
	byName  map[string]int
}

// NewVaryingTable returns an empty varying table.
func NewVaryingTable() *VaryingTable {
	return &VaryingTable{byName: make(map[string]int)}
}

// Len returns the number of varyings currently in the table.
func (vt *VaryingTable) Len() int { return len(vt.entries) }

// Lookup returns the linked slot for name, or -1 if not present.
func (vt *VaryingTable) Lookup(name string) int {
	if i, ok := vt.byName[name]; ok {
		return i
	}
	return -1
}

// At returns the varying at the given linked slot.
func (vt *VaryingTable) At(slot int) Varying { return vt.entries[slot] }

// All returns the varyings in linked-slot order.
func (vt *VaryingTable) All() []Varying { return vt.entries }

// Add appends a new varying, enforcing name uniqueness (invariant 1).
// Returns the new slot and an error if name is already present.
func (vt *VaryingTable) Add(v Varying) (int, error) {
	if _, ok := vt.byName[v.Name]; ok {
		return -1, fmt.Errorf("varying %q already in program", v.Name)
	}
	slot := len(vt.entries)
	vt.entries = append(vt.entries, v)
	vt.byName[v.Name] = slot
	return slot, nil
}

// UniformBinding records, for one program-wide uniform name, the parameter
// index it occupies in each stage's parameter list (AbsentParam if the
// stage doesn't declare it).
type UniformBinding struct {
	Name          string
	VertexParam   int
	GeometryParam int
	FragmentParam int
	Initialized   bool
}

// UniformTable is the program-wide, ordered list of uniforms.
type UniformTable struct {
	entries []UniformBinding
	byName  map[string]int
}

// NewUniformTable returns an empty uniform table.
func NewUniformTable() *UniformTable {
	return &UniformTable{byName: make(map[string]int)}
}

// Len returns the number of uniforms in the table.
func (ut *UniformTable) Len() int { return len(ut.entries) }

// All returns the uniforms in table order.
func (ut *UniformTable) All() []UniformBinding { return ut.entries }

// paramSlot returns a pointer to the per-stage parameter-index field for
// stage within a binding.
func paramSlot(b *UniformBinding, stage StageType) *int {
	switch stage {
	case StageVertex:
		return &b.VertexParam
	case StageGeometry:
		return &b.GeometryParam
	default:
		return &b.FragmentParam
	}
}

// Append records that stage declares a uniform or sampler named name at
// parameter index paramIdx, creating a new table entry if name hasn't been
// seen from any stage yet, or augmenting the existing entry otherwise.
func (ut *UniformTable) Append(name string, stage StageType, paramIdx int, initialized bool) *UniformBinding {
	i, ok := ut.byName[name]
	if !ok {
		i = len(ut.entries)
		ut.entries = append(ut.entries, UniformBinding{
			Name:          name,
			VertexParam:   AbsentParam,
			GeometryParam: AbsentParam,
			FragmentParam: AbsentParam,
		})
		ut.byName[name] = i
	}
	b := &ut.entries[i]
	*paramSlot(b, stage) = paramIdx
	if initialized {
		b.Initialized = true
	}
	return b
}

// Attribute is one entry of the program-wide attribute table. Slot is -1
// for built-in vertex attributes published for introspection only.
type Attribute struct {
	Name     string
	Size     int
	DataType DataType
	Slot     int
}

// AttributeTable is the program-wide, ordered list of vertex attributes.
type AttributeTable struct {
	entries []Attribute
}

// NewAttributeTable returns an empty attribute table.
func NewAttributeTable() *AttributeTable { return &AttributeTable{} }

// All returns the attributes in table order.
func (at *AttributeTable) All() []Attribute { return at.entries }

// Add appends an attribute entry.
func (at *AttributeTable) Add(a Attribute) {
	at.entries = append(at.entries, a)
}

// IndexOf returns the slot of the first entry named name, or -1 if no
// entry has that name (built-in entries also carry slot -1).
func (at *AttributeTable) IndexOf(name string) int {
	for _, a := range at.entries {
		if a.Name == name {
			return a.Slot
		}
	}
	return -1
}
