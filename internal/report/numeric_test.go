package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type NumericTestSuite struct {
	suite.Suite
}

func TestNumericSuite(t *testing.T) {
	suite.Run(t, new(NumericTestSuite))
}

// TestNormalize covers the locale-tolerant parsing contract with
// table-driven cases.
func (s *NumericTestSuite) TestNormalize() {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"european thousands and decimal", "1.234,56", 1234.56},
		{"plain integer string", "300", 300},
		{"decimal comma only", "12,5", 12.5},
		{"currency prefix stripped", "€ 1.500,00", 1500},
		{"negative value", "-42,5", -42.5},
		{"empty string", "", 0},
		{"garbage string", "n/a", 0},
		{"nil", nil, 0},
		{"native float", 42.0, 42},
		{"native int", 42, 42},
		{"nan degrades to zero", math.NaN(), 0},
		{"inf degrades to zero", math.Inf(1), 0},
		{"unsupported type", []string{"x"}, 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.InDelta(tt.want, Normalize(tt.in), 1e-9)
		})
	}
}

// TestTruthyFlag verifies the three boolean encodings the upstream exporter
// is known to emit.
func (s *NumericTestSuite) TestTruthyFlag() {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"string true", "true", true},
		{"string True", "True", true},
		{"string false", "false", false},
		{"numeric one", float64(1), true},
		{"numeric zero", float64(0), false},
		{"int one", 1, true},
		{"nil", nil, false},
		{"unrelated string", "yes", false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, TruthyFlag(tt.in))
		})
	}
}
