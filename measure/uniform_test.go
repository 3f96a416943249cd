package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calum74/econv/measure"
)

func TestCheckUniform(t *testing.T) {
	const (
		target  = 6
		samples = 60000
	)

	r, err := measure.CheckUniform[uint64](chachaSource(7), target, samples)
	require.NoError(t, err)

	assert.EqualValues(t, target, r.Target)
	assert.Equal(t, samples, r.Samples)
	assert.Len(t, r.Counts, target)

	var total uint64
	for _, c := range r.Counts {
		total += c
	}
	assert.EqualValues(t, samples, total)

	// The source is deterministic, so these are regression thresholds, not
	// flaky statistics: a correct converter lands far inside them.
	assert.Less(t, r.MaxDeviation, 0.05)
	assert.Greater(t, r.PValue, 1e-6)
	assert.Less(t, r.PValue, 1.0)
}

func TestCheckUniformSingleBucket(t *testing.T) {
	r, err := measure.CheckUniform[uint32](chachaSource(8), 1, 100)
	require.NoError(t, err)

	assert.EqualValues(t, 100, r.Counts[0])
	assert.Zero(t, r.ChiSquare)
	assert.EqualValues(t, 1, r.PValue)
}
