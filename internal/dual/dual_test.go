package dual_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gdual "gonum.org/v1/gonum/num/dual"

	"github.com/born-ml/dualgrad/internal/dual"
	"github.com/born-ml/dualgrad/internal/numeric"
)

const delta = 1e-9

// panicError runs f and returns the error it panicked with.
func panicError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	f()
	return nil
}

func TestNewAndVariable(t *testing.T) {
	c := dual.New(2.5)
	assert.Equal(t, 2.5, c.Val)
	assert.Equal(t, 0.0, c.Dual)

	x := dual.Variable(3)
	assert.Equal(t, 3.0, x.Val)
	assert.Equal(t, 1.0, x.Dual)
}

func TestOperators(t *testing.T) {
	a := dual.Number{Val: 3, Dual: 2}
	b := dual.Number{Val: 4, Dual: -1}

	tests := []struct {
		name string
		got  dual.Number
		val  float64
		der  float64
	}{
		{"Add", a.Add(b), 7, 1},
		{"AddReal", a.AddReal(10), 13, 2},
		{"Mul", a.Mul(b), 12, 2*4 + 3*-1},
		{"MulReal", a.MulReal(5), 15, 10},
		{"PowReal", a.PowReal(2), 9, 2 * 3 * 2},
		{"PowReal inverse", a.PowReal(-1), 1.0 / 3, -1.0 / 9 * 2},
		{
			"Pow",
			a.Pow(b),
			math.Pow(3, 4),
			math.Pow(3, 4) * (-1*math.Log(3) + 4*2/3.0),
		},
		{"Tanh", dual.Tanh(a), math.Tanh(3), (1 - math.Tanh(3)*math.Tanh(3)) * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.val, tt.got.Val, delta, "Val")
			assert.InDelta(t, tt.der, tt.got.Dual, delta, "Dual")
		})
	}
}

func TestOperators_DoNotMutateOperands(t *testing.T) {
	a := dual.Number{Val: 3, Dual: 2}
	b := dual.Number{Val: 4, Dual: -1}

	_ = a.Add(b).Mul(b).Pow(a).AddReal(1).MulReal(2).PowReal(3)

	assert.Equal(t, dual.Number{Val: 3, Dual: 2}, a)
	assert.Equal(t, dual.Number{Val: 4, Dual: -1}, b)
}

func TestForward_Polynomial(t *testing.T) {
	// f(x) = x² + 2x + 1, f'(x) = 2x + 2
	f := func(x dual.Number) dual.Number {
		return x.PowReal(2).Add(x.MulReal(2)).AddReal(1)
	}

	result := dual.Forward(f, 3)
	assert.Equal(t, 16.0, result.Val)
	assert.Equal(t, 8.0, result.Dual)
}

func TestForward_Constant(t *testing.T) {
	result := dual.Forward(func(dual.Number) dual.Number { return dual.New(42) }, 7)
	assert.Equal(t, 42.0, result.Val)
	assert.Equal(t, 0.0, result.Dual)
}

func TestForward_VariableExponent(t *testing.T) {
	// f(x) = x^x, f'(x) = x^x (ln x + 1)
	result := dual.Forward(func(x dual.Number) dual.Number { return x.Pow(x) }, 2)
	assert.InDelta(t, 4.0, result.Val, delta)
	assert.InDelta(t, 4*(math.Log(2)+1), result.Dual, delta)
}

func TestPow_NonPositiveBasePanics(t *testing.T) {
	for _, base := range []float64{0, -2} {
		a := dual.Variable(base)
		err := panicError(t, func() { a.Pow(dual.New(2)) })
		assert.True(t, errors.Is(err, numeric.ErrDomain), "base %v: %v", base, err)
	}
}

func TestPowReal_ZeroBase(t *testing.T) {
	// 0^2 is fine: the derivative uses 0^1.
	r := dual.Variable(0).PowReal(2)
	assert.Equal(t, 0.0, r.Val)
	assert.Equal(t, 0.0, r.Dual)

	// 0^0.5 has a diverging derivative.
	err := panicError(t, func() { dual.Variable(0).PowReal(0.5) })
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

func TestPowReal_NegativeBaseFractionalIsNaN(t *testing.T) {
	r := dual.Variable(-2).PowReal(0.5)
	assert.True(t, math.IsNaN(r.Val))
	assert.True(t, math.IsNaN(r.Dual))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(16+8ϵ)", dual.Number{Val: 16, Dual: 8}.String())
	assert.Equal(t, "(1.5-2ϵ)", dual.Number{Val: 1.5, Dual: -2}.String())
}

// TestMatchesGonum cross-checks the operator rules against gonum's dual numbers.
func TestMatchesGonum(t *testing.T) {
	tests := []struct {
		name  string
		ours  func(x dual.Number) dual.Number
		gonum func(x gdual.Number) gdual.Number
	}{
		{
			name: "polynomial",
			ours: func(x dual.Number) dual.Number {
				return x.PowReal(3).Add(x.MulReal(-4)).AddReal(2)
			},
			gonum: func(x gdual.Number) gdual.Number {
				return gdual.Add(gdual.Add(gdual.PowReal(x, 3), gdual.Scale(-4, x)), gdual.Number{Real: 2})
			},
		},
		{
			name: "product",
			ours: func(x dual.Number) dual.Number {
				return x.Mul(x.AddReal(1)).Mul(dual.Tanh(x))
			},
			gonum: func(x gdual.Number) gdual.Number {
				return gdual.Mul(gdual.Mul(x, gdual.Add(x, gdual.Number{Real: 1})), gdual.Tanh(x))
			},
		},
		{
			name: "general power",
			ours: func(x dual.Number) dual.Number {
				return x.Pow(x.MulReal(0.5))
			},
			gonum: func(x gdual.Number) gdual.Number {
				return gdual.Pow(x, gdual.Scale(0.5, x))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range []float64{0.5, 1.3, 2, 4.75} {
				got := dual.Forward(tt.ours, x)
				want := tt.gonum(gdual.Number{Real: x, Emag: 1})
				assert.InDelta(t, want.Real, got.Val, 1e-9, "value at %v", x)
				assert.InDelta(t, want.Emag, got.Dual, 1e-9, "derivative at %v", x)
			}
		})
	}
}
