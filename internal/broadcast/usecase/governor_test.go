package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGovernorMode(t *testing.T) {
	assert.Equal(t, "dry-run", NewSafetyGovernor(testConfig(false, 50)).Mode())
	assert.Equal(t, "live", NewSafetyGovernor(testConfig(true, 50)).Mode())
}

func TestGovernorCap(t *testing.T) {
	tests := []struct {
		maxTokens  int
		tokenCount int
		wantKept   int
		wantCapped bool
	}{
		{maxTokens: 50, tokenCount: 0, wantKept: 0, wantCapped: false},
		{maxTokens: 50, tokenCount: 49, wantKept: 49, wantCapped: false},
		{maxTokens: 50, tokenCount: 50, wantKept: 50, wantCapped: false},
		{maxTokens: 50, tokenCount: 51, wantKept: 50, wantCapped: true},
		{maxTokens: 50, tokenCount: 500, wantKept: 50, wantCapped: true},
		{maxTokens: 1, tokenCount: 3, wantKept: 1, wantCapped: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.tokenCount, tt.maxTokens), func(t *testing.T) {
			governor := NewSafetyGovernor(testConfig(false, tt.maxTokens))
			tokens := make([]string, tt.tokenCount)
			for i := range tokens {
				tokens[i] = fmt.Sprintf("tok-%03d", i)
			}

			capped, originalCount, cappedByLimit := governor.Cap(tokens)

			assert.Len(t, capped, tt.wantKept)
			assert.Equal(t, tt.tokenCount, originalCount)
			assert.Equal(t, tt.wantCapped, cappedByLimit)
			if tt.wantKept > 0 {
				// Truncation keeps the head of the list in order.
				assert.Equal(t, "tok-000", capped[0])
				assert.Equal(t, fmt.Sprintf("tok-%03d", tt.wantKept-1), capped[len(capped)-1])
			}
		})
	}
}
