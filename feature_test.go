package intersecter

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func TestNewFeature(t *testing.T) {
	f, err := NewFeature(23, 36)
	require.NoError(t, err)
	expect.EQ(t, f, Feature{Start: 23, End: 36})

	_, err = NewFeature(36, 23)
	require.Error(t, err)

	// Zero-length features are valid.
	f, err = NewFeature(5, 5)
	require.NoError(t, err)
	expect.EQ(t, f, Feature{Start: 5, End: 5})
}

func TestFeatureString(t *testing.T) {
	tests := []struct {
		f    Feature
		want string
	}{
		{Feature{Start: 23, End: 36}, "Feature(23, 36)"},
		{Feature{Start: 0, End: 10, Strand: ReverseStrand}, "Feature(0, 10, strand=-1)"},
		{
			Feature{Start: 34, End: 48, Strand: ReverseStrand, Name: "fred"},
			`Feature(34, 48, strand=-1, name="fred")`,
		},
		{
			Feature{Start: 1, End: 2, Name: "x", Info: "transposon"},
			`Feature(1, 2, name="x", transposon)`,
		},
	}
	for _, tt := range tests {
		expect.EQ(t, tt.f.String(), tt.want)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Feature
		want PosType
	}{
		{Feature{Start: 1, End: 2}, Feature{Start: 12, End: 13}, 10},
		{Feature{Start: 1, End: 2}, Feature{Start: 2, End: 3}, 0},
		{Feature{Start: 1, End: 100}, Feature{Start: 20, End: 30}, 0},
		{Feature{Start: 5, End: 5}, Feature{Start: 5, End: 5}, 0},
		{Feature{Start: 0, End: 1}, Feature{Start: 1000, End: 1001}, 999},
	}
	for _, tt := range tests {
		expect.EQ(t, Distance(tt.a, tt.b), tt.want)
		// Distance is symmetric.
		expect.EQ(t, Distance(tt.b, tt.a), tt.want)
		expect.GE(t, int(Distance(tt.a, tt.b)), 0)
	}
}
