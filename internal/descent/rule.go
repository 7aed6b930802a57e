package descent

import "math"

// Rule computes the next estimate from the current estimate and the
// derivative at that estimate.
//
// Rules may carry state between steps (velocity, moment estimates).
// Minimize calls Reset before the first step of every run, so a single Rule
// value can be reused across runs but not shared between concurrent runs.
type Rule interface {
	// Step returns the estimate that follows x given the derivative grad at x.
	Step(x, grad float64) float64

	// Reset clears per-run state.
	Reset()

	// GetLR returns the step size.
	GetLR() float64
}

// Fixed is plain fixed-step gradient descent.
//
// Update rule:
//
//	x = x - lr * gradient
//
// The step size is used exactly as given: zero, negative and oversized step
// sizes are not corrected. On f(x) = x² any lr >= 1 oscillates or diverges.
type Fixed struct {
	LR float64
}

// NewFixed creates a fixed-step rule.
func NewFixed(lr float64) *Fixed {
	return &Fixed{LR: lr}
}

// Step returns x - lr*grad.
func (f *Fixed) Step(x, grad float64) float64 {
	return x - f.LR*grad
}

// Reset is a no-op: Fixed is stateless.
func (f *Fixed) Reset() {}

// GetLR returns the step size.
func (f *Fixed) GetLR() float64 {
	return f.LR
}

// SetLR updates the step size.
func (f *Fixed) SetLR(lr float64) {
	f.LR = lr
}

// Momentum implements gradient descent with heavy-ball momentum.
//
// Update rule:
//
//	velocity = momentum * velocity + gradient
//	x = x - lr * velocity
//
// With Momentum == 0 it reduces to Fixed.
type Momentum struct {
	lr       float64
	momentum float64
	velocity float64
}

// MomentumConfig holds configuration for the Momentum rule.
type MomentumConfig struct {
	LR       float64 // Step size (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewMomentum creates a momentum rule.
//
// A zero LR defaults to 0.01.
func NewMomentum(config MomentumConfig) *Momentum {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &Momentum{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step applies one momentum update.
func (m *Momentum) Step(x, grad float64) float64 {
	m.velocity = m.momentum*m.velocity + grad
	return x - m.lr*m.velocity
}

// Reset zeroes the velocity.
func (m *Momentum) Reset() {
	m.velocity = 0
}

// GetLR returns the step size.
func (m *Momentum) GetLR() float64 {
	return m.lr
}

// SetLR updates the step size. Unlike NewMomentum it keeps zero as given.
func (m *Momentum) SetLR(lr float64) {
	m.lr = lr
}

// Velocity returns the current velocity.
func (m *Momentum) Velocity() float64 {
	return m.velocity
}

// Adam implements the Adam (Adaptive Moment Estimation) rule on a scalar.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	x = x - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int     // Timestep for bias correction
	m     float64 // First moment estimate
	v     float64 // Second moment estimate
}

// AdamConfig holds configuration for the Adam rule.
type AdamConfig struct {
	LR    float64    // Step size (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates an Adam rule, filling zero fields with defaults.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}
}

// Step applies one Adam update.
func (a *Adam) Step(x, grad float64) float64 {
	a.t++

	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	a.m = a.beta1*a.m + (1.0-a.beta1)*grad
	a.v = a.beta2*a.v + (1.0-a.beta2)*grad*grad

	mHat := a.m / biasCorrection1
	vHat := a.v / biasCorrection2

	return x - a.lr*mHat/(math.Sqrt(vHat)+a.eps)
}

// Reset clears the moment estimates and the timestep.
func (a *Adam) Reset() {
	a.t = 0
	a.m = 0
	a.v = 0
}

// GetLR returns the step size.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the step size. Unlike NewAdam it keeps zero as given.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the number of steps taken since the last Reset.
func (a *Adam) GetTimestep() int {
	return a.t
}
