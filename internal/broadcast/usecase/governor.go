package usecase

import "sellerapp-backend/pkg/config"

// SafetyGovernor holds the broadcast safety policy: the live-mode
// kill-switch and the hard cap on tokens per send. Both come from
// startup configuration, never from the request.
type SafetyGovernor struct {
	liveMode  bool
	maxTokens int
}

// NewSafetyGovernor creates a SafetyGovernor from the loaded config
func NewSafetyGovernor(cfg *config.Config) *SafetyGovernor {
	return &SafetyGovernor{
		liveMode:  cfg.FCMLiveMode,
		maxTokens: cfg.FCMMaxTokensPerSend,
	}
}

// LiveMode reports whether real sends are enabled. When false every
// request is processed as a dry-run.
func (g *SafetyGovernor) LiveMode() bool {
	return g.liveMode
}

// MaxTokensPerSend returns the configured cap
func (g *SafetyGovernor) MaxTokensPerSend() int {
	return g.maxTokens
}

// Mode returns the mode string reported in every response
func (g *SafetyGovernor) Mode() string {
	if g.liveMode {
		return "live"
	}
	return "dry-run"
}

// Cap truncates an oversized audience to the first maxTokens entries
// in resolution order. The original size is retained for reporting;
// capping never rejects the send.
func (g *SafetyGovernor) Cap(tokens []string) (capped []string, originalCount int, cappedByLimit bool) {
	originalCount = len(tokens)
	if originalCount > g.maxTokens {
		return tokens[:g.maxTokens], originalCount, true
	}
	return tokens, originalCount, false
}
