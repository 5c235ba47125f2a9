package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiller-sim/internal/model"
	"chiller-sim/internal/profile"
)

func TestRankGains_SortedByMismatch(t *testing.T) {
	prof, err := profile.Generate(60, 60)
	require.NoError(t, err)

	scores, err := RankGains(prof, SweepGrid{KpMax: 2, KiMax: 2, Steps: 4})
	require.NoError(t, err)
	require.Len(t, scores, 16)

	for i := 1; i < len(scores); i++ {
		assert.LessOrEqual(t, scores[i-1].MismatchKWh, scores[i].MismatchKWh)
	}
	for _, s := range scores {
		assert.InDelta(t, s.DeficitKWh+s.OverperformanceKWh, s.MismatchKWh, 1e-12)
		assert.GreaterOrEqual(t, s.Kp, 0.0)
		assert.LessOrEqual(t, s.Kp, 2.0)
		assert.GreaterOrEqual(t, s.Ki, 0.0)
		assert.LessOrEqual(t, s.Ki, 2.0)
	}
}

func TestRankGains_ZeroGainsRankLast(t *testing.T) {
	// With no control action the entire load is deficit, which no other grid
	// point can exceed by much; the (0,0) corner should not rank first.
	prof, err := profile.Generate(60, 60)
	require.NoError(t, err)

	scores, err := RankGains(prof, SweepGrid{KpMax: 2, KiMax: 2, Steps: 3})
	require.NoError(t, err)
	require.NotEmpty(t, scores)

	best := scores[0]
	assert.False(t, best.Kp == 0 && best.Ki == 0)
}

func TestRankGains_InvalidGrid(t *testing.T) {
	prof, err := profile.Generate(60, 60)
	require.NoError(t, err)
	var inputErr *model.InvalidInputError

	_, err = RankGains(prof, SweepGrid{KpMax: 2, KiMax: 2, Steps: 1})
	require.Error(t, err)
	assert.True(t, errors.As(err, &inputErr))

	_, err = RankGains(prof, SweepGrid{KpMax: -1, KiMax: 2, Steps: 3})
	require.Error(t, err)
	assert.True(t, errors.As(err, &inputErr))
}
