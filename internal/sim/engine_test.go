package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiller-sim/internal/model"
	"chiller-sim/internal/profile"
)

func TestRun_SyntheticProfile(t *testing.T) {
	engine := New()

	res, err := engine.Run(Params{TimeScaleMinutes: 60, Kp: 0.8, Ki: 0.3})
	require.NoError(t, err)

	assert.Equal(t, profile.DefaultSampleCount, res.Profile.Len())
	assert.Equal(t, res.Profile.Len(), res.Response.Len())
	assert.True(t, res.Profile.SameGrid(res.Response))
	assert.Equal(t, 0.0, res.Response.Values[0])
	assert.GreaterOrEqual(t, res.Report.DeficitKWh, 0.0)
	assert.GreaterOrEqual(t, res.Report.OverperformanceKWh, 0.0)
	assert.Equal(t, res.Response.Values[res.Peak.Index], res.Peak.PowerKW)
}

func TestRun_SampleCountOverride(t *testing.T) {
	res, err := New().Run(Params{TimeScaleMinutes: 60, Kp: 1, SampleCount: 25})
	require.NoError(t, err)
	assert.Equal(t, 25, res.Profile.Len())
}

func TestRun_CustomLoad(t *testing.T) {
	res, err := New().Run(Params{
		TimeScaleMinutes: 10,
		Kp:               1,
		CustomLoad:       "10,20,30",
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 5, 10}, res.Profile.Times)
	assert.Equal(t, []float64{10, 20, 30}, res.Profile.Values)
	assert.Equal(t, 3, res.Response.Len())
}

func TestRun_CustomLoadParseFailure(t *testing.T) {
	res, err := New().Run(Params{
		TimeScaleMinutes: 10,
		Kp:               1,
		CustomLoad:       "10,abc,30",
	})
	require.Error(t, err)
	assert.Nil(t, res)

	// The facade surfaces the field name and keeps the parse cause reachable.
	var inputErr *model.InvalidInputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "custom_load", inputErr.Field)

	var parseErr *model.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestRun_InvalidTimeScale(t *testing.T) {
	res, err := New().Run(Params{TimeScaleMinutes: 0, Kp: 1})
	require.Error(t, err)
	assert.Nil(t, res)
}

func TestRun_NegativeGainRejected(t *testing.T) {
	res, err := New().Run(Params{TimeScaleMinutes: 60, Kp: -1})
	require.Error(t, err)
	assert.Nil(t, res)

	var inputErr *model.InvalidInputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestRun_Deterministic(t *testing.T) {
	p := Params{TimeScaleMinutes: 45, Kp: 1.1, Ki: 0.4}

	a, err := New().Run(p)
	require.NoError(t, err)
	b, err := New().Run(p)
	require.NoError(t, err)

	assert.Equal(t, a.Report, b.Report)
	assert.Equal(t, a.Peak, b.Peak)
	assert.Equal(t, a.Response.Values, b.Response.Values)
}

func TestTrace_RowsMatchSeries(t *testing.T) {
	res, err := New().Run(Params{TimeScaleMinutes: 60, Kp: 0.8, Ki: 0.3})
	require.NoError(t, err)

	rows := res.Trace()
	require.Len(t, rows, res.Profile.Len())

	for i, r := range rows {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, res.Profile.Times[i], r.TimeMinutes)
		assert.Equal(t, res.Profile.Values[i], r.LoadKW)
		assert.Equal(t, res.Response.Values[i], r.ResponseKW)
		assert.False(t, r.DeficitKW > 0 && r.OverperformanceKW > 0)
	}
}
