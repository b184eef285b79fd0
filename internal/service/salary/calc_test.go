package salary

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNetAmount(t *testing.T) {
	tests := []struct {
		name                   string
		base, bonus, deduction int64
		want                   int64
	}{
		{"base only", 1000, 0, 0, 1000},
		{"bonus added", 1000, 200, 0, 1200},
		{"deduction subtracted", 1000, 0, 150, 850},
		{"both", 1000, 200, 150, 1050},
		{"deduction exceeds base", 500, 0, 800, -300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NetAmount(
				decimal.NewFromInt(tt.base),
				decimal.NewFromInt(tt.bonus),
				decimal.NewFromInt(tt.deduction),
			)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("NetAmount() = %s, want %d", got, tt.want)
			}
		})
	}
}
