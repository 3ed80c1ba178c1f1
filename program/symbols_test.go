package program

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVaryingTable_AddAndLookup(t *testing.T) {
	vt := NewVaryingTable()

	slot, err := vt.Add(Varying{Name: "v_color", Size: 4, DataType: TypeVec4})
	require.NoError(t, err)
	require.Equal(t, 0, slot)
	require.Equal(t, 0, vt.Lookup("v_color"))
	require.Equal(t, -1, vt.Lookup("missing"))
	require.Equal(t, 1, vt.Len())
}

func TestVaryingTable_DuplicateNameRejected(t *testing.T) {
	vt := NewVaryingTable()
	_, err := vt.Add(Varying{Name: "v_color", Size: 4, DataType: TypeVec4})
	require.NoError(t, err)

	_, err = vt.Add(Varying{Name: "v_color", Size: 2, DataType: TypeVec2})
	require.Error(t, err)
	require.Equal(t, 1, vt.Len())
}

func TestUniformTable_AppendTracksPerStageSlots(t *testing.T) {
	ut := NewUniformTable()

	b := ut.Append("mvp", StageVertex, 3, false)
	require.Equal(t, 3, b.VertexParam)
	require.Equal(t, AbsentParam, b.GeometryParam)
	require.Equal(t, AbsentParam, b.FragmentParam)

	b = ut.Append("mvp", StageFragment, 1, true)
	require.Equal(t, 3, b.VertexParam)
	require.Equal(t, 1, b.FragmentParam)
	require.True(t, b.Initialized)

	require.Equal(t, 1, ut.Len())
}

func TestAttributeTable_IndexOfReturnsSlotOrMissing(t *testing.T) {
	at := NewAttributeTable()
	at.Add(Attribute{Name: "a_position", Size: 4, DataType: TypeVec4, Slot: 0})

	require.Equal(t, 0, at.IndexOf("a_position"))
	require.Equal(t, -1, at.IndexOf("a_missing"))
}

func TestParameterList_IndexOfAndClone(t *testing.T) {
	pl := &ParameterList{}
	pl.Add(Param{Name: "mvp", Kind: ParamUniform, Size: 16})
	pl.Add(Param{Name: "tex0", Kind: ParamSampler, Size: 1})

	require.Equal(t, 1, pl.IndexOf("tex0"))
	require.Equal(t, -1, pl.IndexOf("missing"))

	clone := pl.Clone()
	clone.Params[0].Name = "changed"
	require.Equal(t, "mvp", pl.Params[0].Name)
}

func TestAgree(t *testing.T) {
	require.True(t, Agree(FlagCentroid, FlagCentroid|FlagInvariant, FlagCentroid))
	require.False(t, Agree(FlagCentroid, 0, FlagCentroid))
}
