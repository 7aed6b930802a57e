package sweep

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradient/internal/descent"
)

func TestRun_MatchesDescend(t *testing.T) {
	rates := []float64{0.01, 0.1, 0.5, 1.0, 1.5}
	points, err := Run(Job{
		Objective:  descent.Square{},
		Start:      5,
		Iterations: 40,
	}, rates, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, points, len(rates))

	for i, p := range points {
		assert.Equal(t, rates[i], p.LR)
		final, traj := descent.Descend(5, rates[i], 40)
		assert.Equal(t, final, p.Result.Final, "lr=%v", p.LR)
		assert.Equal(t, traj, p.Result.Trajectory, "lr=%v", p.LR)
	}

	assert.Equal(t, descent.Oscillating, points[3].Result.Status)
	assert.Equal(t, descent.Diverging, points[4].Result.Status)
}

func TestRun_StatefulRules(t *testing.T) {
	job := Job{
		Objective:  descent.Square{},
		Start:      3,
		Iterations: 100,
		NewRule: func(lr float64) descent.Rule {
			return descent.NewMomentum(descent.MomentumConfig{LR: lr, Momentum: 0.9})
		},
	}
	rates := make([]float64, 32)
	for i := range rates {
		rates[i] = 0.01 * float64(i+1)
	}

	parallel, err := Run(job, rates, Config{Workers: 8, MinChunkSize: 1})
	require.NoError(t, err)
	sequential, err := Run(job, rates, Config{Workers: 1})
	require.NoError(t, err)

	for i := range rates {
		assert.Equal(t, sequential[i].Result.Trajectory, parallel[i].Result.Trajectory)
	}
}

func TestRun_StrictErrors(t *testing.T) {
	points, err := Run(Job{
		Objective:  descent.Square{},
		Start:      5,
		Iterations: 10,
		Strict:     true,
	}, []float64{0.1, math.NaN(), 0.2}, DefaultConfig())

	require.Error(t, err)
	assert.ErrorIs(t, err, descent.ErrNonFinite)
	assert.NotNil(t, points[0].Result)
	assert.Nil(t, points[1].Result)
	assert.NotNil(t, points[2].Result)
}

func TestRun_Empty(t *testing.T) {
	points, err := Run(Job{Objective: descent.Square{}}, nil, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestForEach(t *testing.T) {
	for _, cfg := range []Config{
		DefaultConfig(),
		{Workers: 1},
		{Workers: 4, MinChunkSize: 300},
		{Workers: 3, MinChunkSize: 7},
	} {
		var counter int64
		seen := make([]int32, 1000)
		forEach(len(seen), func(i int) {
			atomic.AddInt64(&counter, 1)
			atomic.AddInt32(&seen[i], 1)
		}, cfg)

		assert.Equal(t, int64(1000), counter, "cfg %+v", cfg)
		for i, s := range seen {
			if s != 1 {
				t.Errorf("index %d visited %d times with cfg %+v", i, s, cfg)
			}
		}
	}
}
