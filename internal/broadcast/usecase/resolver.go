package usecase

import (
	"strings"

	broadcastdto "sellerapp-backend/internal/broadcast/dto"
	sellerdomain "sellerapp-backend/internal/seller/domain"
	sellerrepo "sellerapp-backend/internal/seller/repository"
)

// AudienceResolver turns a targeting request into a flat list of push
// tokens. Tokens are not de-duplicated: a token registered on two
// seller records is sent to twice and counted twice.
type AudienceResolver struct {
	sellerRepo sellerrepo.SellerRepository
}

// NewAudienceResolver creates a new AudienceResolver
func NewAudienceResolver(sellerRepo sellerrepo.SellerRepository) *AudienceResolver {
	return &AudienceResolver{
		sellerRepo: sellerRepo,
	}
}

// Resolve returns the token list for the request's targeting mode.
//
// "tokens" and "sellers" reject an empty result; "all" does not — an
// empty audience there falls through to the zero-token check in the
// orchestrator. The asymmetry is deliberate and matches the dashboard
// contract.
func (r *AudienceResolver) Resolve(req *broadcastdto.SendRequest) ([]string, error) {
	switch req.TargetType {
	case broadcastdto.TargetTokens:
		tokens := make([]string, 0, len(req.TargetTokens))
		for _, token := range req.TargetTokens {
			if strings.TrimSpace(token) != "" {
				tokens = append(tokens, token)
			}
		}
		if len(tokens) == 0 {
			return nil, ErrNoValidTokens
		}
		return tokens, nil

	case broadcastdto.TargetSellers:
		sellers, err := r.sellerRepo.FindByIDsWithTokens(req.TargetSellers)
		if err != nil {
			return nil, err
		}
		tokens := flattenTokens(sellers)
		if len(tokens) == 0 {
			return nil, ErrNoSellerTokens
		}
		return tokens, nil

	case broadcastdto.TargetAll:
		sellers, err := r.sellerRepo.FindAllWithTokens()
		if err != nil {
			return nil, err
		}
		return flattenTokens(sellers), nil

	default:
		return nil, ErrInvalidTargetType
	}
}

// flattenTokens collects every token in record order, then token order
// within each record.
func flattenTokens(sellers []sellerdomain.Seller) []string {
	var tokens []string
	for _, seller := range sellers {
		for _, pushToken := range seller.PushTokens {
			tokens = append(tokens, pushToken.Token)
		}
	}
	return tokens
}
