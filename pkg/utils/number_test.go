package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Zero", input: 0, expected: 0},
		{name: "Já com duas casas", input: 12.34, expected: 12.34},
		{name: "Arredonda para cima", input: 1.886985, expected: 1.89},
		{name: "Arredonda para baixo", input: 20.0749, expected: 20.07},
		{name: "Três casas decimais", input: 3.456, expected: 3.46},
		{name: "Negativo", input: -12.5799, expected: -12.58},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}
