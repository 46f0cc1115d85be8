package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSecondaryLabels(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"with content", "[secondary_label Output]", 0},
		{"multi word", "[secondary_label Sample config file]", 0},
		{"bare", "[secondary_label]", 1},
		{"blank content", "[secondary_label   ]", 1},
		{"other label", "[label main.go]", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ValidateSecondaryLabels(doc(tt.line), nil), tt.want)
		})
	}
}

func TestValidateSecondaryLabels_LineNumber(t *testing.T) {
	d := doc("```", "[secondary_label Output]", "ok", "```", "", "```", "[secondary_label]", "```")

	violations := ValidateSecondaryLabels(d, nil)
	require.Len(t, violations, 1)
	assert.Equal(t, "empty_secondary_label", violations[0].Type)
	assert.Equal(t, 7, *violations[0].LineNumber)
}
