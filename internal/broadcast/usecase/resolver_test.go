package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	broadcastdto "sellerapp-backend/internal/broadcast/dto"
	sellerdomain "sellerapp-backend/internal/seller/domain"
)

func TestResolveTokensFiltersBlankEntries(t *testing.T) {
	resolver := NewAudienceResolver(&fakeSellerRepo{})

	tokens, err := resolver.Resolve(&broadcastdto.SendRequest{
		TargetType:   broadcastdto.TargetTokens,
		TargetTokens: []string{"tok-a", "   ", "", "tok-b", "\t"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"tok-a", "tok-b"}, tokens)
}

func TestResolveTokensAllBlankRejected(t *testing.T) {
	resolver := NewAudienceResolver(&fakeSellerRepo{})

	_, err := resolver.Resolve(&broadcastdto.SendRequest{
		TargetType:   broadcastdto.TargetTokens,
		TargetTokens: []string{"", "  "},
	})

	assert.ErrorIs(t, err, ErrNoValidTokens)
}

func TestResolveSellersFlattensInOrder(t *testing.T) {
	repo := &fakeSellerRepo{sellers: []sellerdomain.Seller{
		sellerWithTokens("s1", "one@shop.test", "tok-1a", "tok-1b"),
		sellerWithTokens("s2", "two@shop.test", "tok-2a"),
		sellerWithTokens("s3", "three@shop.test", "tok-3a"),
	}}
	resolver := NewAudienceResolver(repo)

	tokens, err := resolver.Resolve(&broadcastdto.SendRequest{
		TargetType:    broadcastdto.TargetSellers,
		TargetSellers: []string{"s1", "s3"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1a", "tok-1b", "tok-3a"}, tokens)
}

func TestResolveSellersWithoutTokensRejected(t *testing.T) {
	repo := &fakeSellerRepo{sellers: []sellerdomain.Seller{
		{ID: "s1", Email: "one@shop.test"}, // no tokens
	}}
	resolver := NewAudienceResolver(repo)

	_, err := resolver.Resolve(&broadcastdto.SendRequest{
		TargetType:    broadcastdto.TargetSellers,
		TargetSellers: []string{"s1", "missing"},
	})

	assert.ErrorIs(t, err, ErrNoSellerTokens)
}

func TestResolveAllEmptyAudienceNotRejected(t *testing.T) {
	resolver := NewAudienceResolver(&fakeSellerRepo{})

	tokens, err := resolver.Resolve(&broadcastdto.SendRequest{
		TargetType: broadcastdto.TargetAll,
	})

	// "all" defers the empty-audience decision to the orchestrator.
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestResolveDuplicateTokensKept(t *testing.T) {
	repo := &fakeSellerRepo{sellers: []sellerdomain.Seller{
		sellerWithTokens("s1", "one@shop.test", "shared-tok"),
		sellerWithTokens("s2", "two@shop.test", "shared-tok"),
	}}
	resolver := NewAudienceResolver(repo)

	tokens, err := resolver.Resolve(&broadcastdto.SendRequest{
		TargetType: broadcastdto.TargetAll,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"shared-tok", "shared-tok"}, tokens)
}

func TestResolveInvalidTargetType(t *testing.T) {
	resolver := NewAudienceResolver(&fakeSellerRepo{})

	for _, targetType := range []string{"", "everyone", "TOKENS"} {
		_, err := resolver.Resolve(&broadcastdto.SendRequest{TargetType: targetType})
		assert.ErrorIs(t, err, ErrInvalidTargetType, "targetType %q", targetType)
	}
}

func TestResolveRepositoryErrorPassedThrough(t *testing.T) {
	repoErr := errors.New("connection refused")
	resolver := NewAudienceResolver(&fakeSellerRepo{err: repoErr})

	_, err := resolver.Resolve(&broadcastdto.SendRequest{
		TargetType:    broadcastdto.TargetSellers,
		TargetSellers: []string{"s1"},
	})

	assert.ErrorIs(t, err, repoErr)
}
