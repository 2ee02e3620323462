package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrowthProjection(t *testing.T) {
	projection := BuildGrowthProjection(10000, 30, 60, 70)

	// 70% equity maps to a 10.8% assumed return.
	assert.InDelta(t, 10.8, projection.ExpectedReturn, 1e-9)
	assert.Equal(t, 60, projection.RetirementAge)

	// Ages 31 through 60 inclusive.
	require.Len(t, projection.Points, 30)
	assert.Equal(t, 31, projection.Points[0].Age)
	assert.Equal(t, 60, projection.Points[len(projection.Points)-1].Age)

	// Corpus grows monotonically with time.
	for i := 1; i < len(projection.Points); i++ {
		assert.Greater(t, projection.Points[i].Corpus, projection.Points[i-1].Corpus)
	}
}

func TestBuildGrowthProjection_CapsAtSeventyFour(t *testing.T) {
	projection := BuildGrowthProjection(5000, 60, 90, 40)

	require.NotEmpty(t, projection.Points)
	assert.Equal(t, 74, projection.Points[len(projection.Points)-1].Age)
}

func TestBuildGrowthProjection_NoYearsLeft(t *testing.T) {
	projection := BuildGrowthProjection(5000, 60, 60, 40)
	assert.Empty(t, projection.Points)

	// Already past the cap yields an empty series rather than a panic.
	projection = BuildGrowthProjection(5000, 80, 85, 40)
	assert.Empty(t, projection.Points)
}
