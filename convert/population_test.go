package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandMinMaxAppendsSuffixes(t *testing.T) {
	got := expandMinMax("domain#LossOfConfidentiality")
	assert.Equal(t, Triplet{
		Min: "domain#LossOfConfidentiality_Min",
		Avg: "domain#LossOfConfidentiality",
		Max: "domain#LossOfConfidentiality_Max",
	}, got)
}

func TestExpandMinMaxEmptyBase(t *testing.T) {
	assert.Equal(t, Triplet{}, expandMinMax(""))
}

func TestExpandMinMaxAtInsertsAfterMarker(t *testing.T) {
	got, multiple, err := expandMinMaxAt("A.B.P.T", "A.B")
	require.NoError(t, err)
	assert.False(t, multiple)
	assert.Equal(t, Triplet{
		Min: "A.B_Min.P.T",
		Avg: "A.B.P.T",
		Max: "A.B_Max.P.T",
	}, got)
}

func TestExpandMinMaxAtUsesFirstOfRepeatedMarkers(t *testing.T) {
	got, multiple, err := expandMinMaxAt("A.B.A", "A")
	require.NoError(t, err)
	assert.True(t, multiple, "repeated marker must be reported")
	assert.Equal(t, "A_Min.B.A", got.Min)
	assert.Equal(t, "A_Max.B.A", got.Max)
}

func TestExpandMinMaxAtMissingMarker(t *testing.T) {
	_, _, err := expandMinMaxAt("A.B.C", "Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Z")
}

func TestThreatPopulationPrefix(t *testing.T) {
	prefix, err := threatPopulationPrefix("domain#H.LSC.HostDown.1")
	require.NoError(t, err)
	assert.Equal(t, "H.LSC", prefix)

	_, err = threatPopulationPrefix("domain#H.LSC.HostDown")
	require.Error(t, err)
}

func TestStrategyPopulationPrefix(t *testing.T) {
	prefix, err := strategyPopulationPrefix("domain#CSG-Patching-Extra-Tail")
	require.NoError(t, err)
	assert.Equal(t, "CSG-Patching", prefix)

	_, err = strategyPopulationPrefix("domain#NoHyphen")
	require.Error(t, err)
}
