package affiliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownAffiliate_DefaultVariants(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		input    string
		expected bool
	}{
		{"Karen Country Club", true},
		{"karen country club", true},
		{"  Karen Country Club  ", true},
		{"Karen Golf Club", true},
		{"Karen C.C.", true},
		{"KCC", true},
		{"kcc", true},
		{"Karen", true},
		{"Member of Karen Country Club", true},
		{"Muthaiga Golf Club", false},
		{"Royal Nairobi", false},
		{"Vet Lab Sports Club", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.IsKnownAffiliate(tt.input))
		})
	}
}

func TestIsKnownAffiliate_BidirectionalContainment(t *testing.T) {
	n := NewNormalizer(nil)

	// Partial input contained inside a known variant still matches
	assert.True(t, n.IsKnownAffiliate("karen country"))
	assert.True(t, n.IsKnownAffiliate("karen cc"))
}

func TestNewNormalizer_CustomVariants(t *testing.T) {
	n := NewNormalizer([]string{" Muthaiga ", "MGC", ""})

	assert.True(t, n.IsKnownAffiliate("Muthaiga Golf Club"))
	assert.True(t, n.IsKnownAffiliate("mgc"))
	assert.False(t, n.IsKnownAffiliate("Karen Country Club"))
	assert.False(t, n.IsKnownAffiliate(""), "empty input never matches even with an empty variant configured")
}

func TestNewNormalizer_EmptyListFallsBackToDefaults(t *testing.T) {
	n := NewNormalizer([]string{})
	assert.True(t, n.IsKnownAffiliate("KCC"))
}
