package webcraft

import "context"

// WhitelistService groups the whitelist endpoints
type WhitelistService struct{ gw *gateway }

// GetWhitelistInfo returns if the whitelist is enabled and enforced
func (s *WhitelistService) GetWhitelistInfo(ctx context.Context) (*WhitelistDto, error) {
	return invoke[WhitelistDto](ctx, s.gw, WhitelistGetWhitelistInfo, nil)
}

// GetWhitelistedPlayers lists all whitelisted players
func (s *WhitelistService) GetWhitelistedPlayers(ctx context.Context) (*WhitelistedPlayersDto, error) {
	return invoke[WhitelistedPlayersDto](ctx, s.gw, WhitelistGetWhitelistedPlayers, nil)
}

// WhitelistPlayer adds a player to the whitelist
func (s *WhitelistService) WhitelistPlayer(ctx context.Context, name string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, WhitelistWhitelistPlayer, WhitelistPlayerRequest{Name: name})
}

// UnwhitelistPlayer removes a player from the whitelist
func (s *WhitelistService) UnwhitelistPlayer(ctx context.Context, name string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, WhitelistUnwhitelistPlayer, UnwhitelistPlayerRequest{Name: name})
}

// IsPlayerWhitelisted checks if a player is on the whitelist
func (s *WhitelistService) IsPlayerWhitelisted(ctx context.Context, player string) (*IsWhitelistedDto, error) {
	return invoke[IsWhitelistedDto](ctx, s.gw, WhitelistIsPlayerWhitelisted, nil, player)
}
