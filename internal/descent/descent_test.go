package descent

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescend_TrajectoryLength(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 1000} {
		_, traj := Descend(5, 0.01, n)
		assert.Len(t, traj, n+1, "iterations=%d", n)
	}
}

func TestDescend_FirstIsStart(t *testing.T) {
	for _, x0 := range []float64{5, -3.25, 0, 1e6} {
		_, traj := Descend(x0, 0.1, 7)
		assert.Equal(t, x0, traj.First())
	}
}

func TestDescend_LastIsFinal(t *testing.T) {
	final, traj := Descend(5, 0.3, 17)
	assert.Equal(t, final, traj.Last())
}

func TestDescend_UpdateRule(t *testing.T) {
	const s = 0.07
	_, traj := Descend(5, s, 50)
	for i := 0; i+1 < len(traj); i++ {
		want := traj[i] - s*(2*traj[i])
		assert.InDelta(t, want, traj[i+1], 1e-12, "step %d", i)
	}
}

// TestDescend_Converges reproduces the default run: start 5, step 0.01,
// 1000 iterations.
func TestDescend_Converges(t *testing.T) {
	final, traj := Descend(5, 0.01, 1000)
	require.Len(t, traj, 1001)
	assert.InDelta(t, 0.0, final, 1e-6)

	// Closed form: x_n = x0 * (1-2s)^n.
	assert.InDelta(t, 5*math.Pow(0.98, 1000), final, 1e-15)
}

func TestDescend_ZeroIterations(t *testing.T) {
	final, traj := Descend(5, 0.01, 0)
	assert.Equal(t, 5.0, final)
	assert.Equal(t, Trajectory{5}, traj)
}

func TestDescend_NegativeIterations(t *testing.T) {
	final, traj := Descend(5, 0.01, -3)
	assert.Equal(t, 5.0, final)
	assert.Equal(t, Trajectory{5}, traj)
}

func TestDescend_UnitStepOscillates(t *testing.T) {
	_, traj := Descend(5, 1.0, 20)
	for i, x := range traj {
		assert.InDelta(t, 5.0, math.Abs(x), 1e-12, "estimate %d", i)
		if i > 0 {
			assert.InDelta(t, -traj[i-1], x, 1e-12, "sign flips at %d", i)
		}
	}
}

func TestDescend_LargeStepDiverges(t *testing.T) {
	_, traj := Descend(5, 1.5, 30)
	mags := traj.Magnitudes()
	for i := 1; i < len(mags); i++ {
		assert.Greater(t, mags[i], mags[i-1], "magnitude must grow at step %d", i)
	}
}

func TestDescend_DoesNotAliasTrajectories(t *testing.T) {
	_, a := Descend(5, 0.1, 3)
	_, b := Descend(5, 0.1, 3)
	a[1] = 42
	assert.NotEqual(t, a[1], b[1])
}

func TestMinimize_MatchesDescend(t *testing.T) {
	for _, s := range []float64{0.01, 0.25, 1.0, 1.5} {
		final, traj := Descend(5, s, 100)

		res, err := Minimize(Square{}, 5, Config{Iterations: 100, Rule: NewFixed(s)})
		require.NoError(t, err)
		assert.Equal(t, final, res.Final, "lr=%v", s)
		assert.Equal(t, traj, res.Trajectory, "lr=%v", s)
		assert.Equal(t, 100, res.Iterations)
	}
}

func TestMinimize_DefaultRule(t *testing.T) {
	res, err := Minimize(Square{}, 5, Config{Iterations: 1000})
	require.NoError(t, err)

	final, _ := Descend(5, 0.01, 1000)
	assert.Equal(t, final, res.Final)
	assert.Equal(t, Converging, res.Status)
}

func TestMinimize_Quadratic(t *testing.T) {
	q := Quadratic{A: 2, B: -8, C: 1}
	res, err := Minimize(q, -10, Config{Iterations: 500, Rule: NewFixed(0.05)})
	require.NoError(t, err)
	assert.InDelta(t, q.Minimizer(), res.Final, 1e-9)
	assert.InDelta(t, 2.0, res.Final, 1e-9)
}

func TestMinimize_Func(t *testing.T) {
	obj := Func{
		F:  math.Cosh,
		DF: math.Sinh,
	}
	res, err := Minimize(obj, 3, Config{Iterations: 2000, Rule: NewFixed(0.1)})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Final, 1e-6)
}

func TestMinimize_NilObjective(t *testing.T) {
	_, err := Minimize(nil, 1, Config{})
	assert.ErrorIs(t, err, ErrNoObjective)
}

func TestMinimize_NonStrictAcceptsAnything(t *testing.T) {
	res, err := Minimize(Square{}, math.NaN(), Config{Iterations: -4})
	require.NoError(t, err)
	assert.Len(t, res.Trajectory, 1)
	assert.True(t, math.IsNaN(res.Final))
	assert.Equal(t, 0, res.Iterations)
}

func TestMinimize_Strict(t *testing.T) {
	tests := []struct {
		name  string
		x0    float64
		lr    float64
		iters int
		want  error
	}{
		{"negative iterations", 5, 0.01, -1, ErrNegativeIterations},
		{"nan start", math.NaN(), 0.01, 10, ErrNonFinite},
		{"inf start", math.Inf(-1), 0.01, 10, ErrNonFinite},
		{"inf step", 5, math.Inf(1), 10, ErrNonFinite},
		{"valid", 5, 0.01, 10, nil},
		{"zero iterations", 5, 0.01, 0, nil},
		{"oversized step is not rejected", 5, 3, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Minimize(Square{}, tt.x0, Config{
				Iterations: tt.iters,
				Rule:       NewFixed(tt.lr),
				Strict:     true,
			})
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMinimize_ReusesRule(t *testing.T) {
	rule := NewAdam(AdamConfig{LR: 0.1})

	first, err := Minimize(Square{}, 3, Config{Iterations: 50, Rule: rule})
	require.NoError(t, err)
	second, err := Minimize(Square{}, 3, Config{Iterations: 50, Rule: rule})
	require.NoError(t, err)

	assert.Equal(t, first.Trajectory, second.Trajectory, "Reset must clear state between runs")
	assert.Equal(t, 50, rule.GetTimestep())
}

func TestQuadratic(t *testing.T) {
	q := Quadratic{A: 1, B: -4, C: 3}
	assert.Equal(t, 0.0, q.Value(1))
	assert.Equal(t, 0.0, q.Value(3))
	assert.Equal(t, -2.0, q.Derivative(1))
	assert.Equal(t, 2.0, q.Minimizer())
}

func TestSquare(t *testing.T) {
	var s Square
	assert.Equal(t, 25.0, s.Value(-5))
	assert.Equal(t, -10.0, s.Derivative(-5))
	assert.Equal(t, "f(x) = x^2", s.String())
}

func TestQuadratic_String(t *testing.T) {
	tests := []struct {
		q    Quadratic
		want string
	}{
		{Quadratic{A: 1, B: -6}, "f(x) = x^2 - 6x"},
		{Quadratic{A: 2, B: -8, C: 1}, "f(x) = 2x^2 - 8x + 1"},
		{Quadratic{A: 1, B: 1, C: 1}, "f(x) = x^2 + x + 1"},
		{Quadratic{A: -1}, "f(x) = -x^2"},
		{Quadratic{A: 0.5, C: -1.5}, "f(x) = 0.5x^2 - 1.5"},
		{Quadratic{B: 3, C: -2}, "f(x) = 3x - 2"},
		{Quadratic{B: -1}, "f(x) = -x"},
		{Quadratic{C: 1}, "f(x) = 1"},
		{Quadratic{}, "f(x) = 0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.q.String())
	}
}
