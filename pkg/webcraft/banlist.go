package webcraft

import "context"

// BanlistService groups the ban list endpoints (players and IP addresses)
type BanlistService struct{ gw *gateway }

// GetBannedIPs lists all banned IP addresses
func (s *BanlistService) GetBannedIPs(ctx context.Context) (*BannedIPsDto, error) {
	return invoke[BannedIPsDto](ctx, s.gw, BanlistGetBannedIPs, nil)
}

// BanIP bans an IP address
func (s *BanlistService) BanIP(ctx context.Context, req BanIPRequest) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, BanlistBanIP, req)
}

// IsIPBanned checks if an IP address is banned
func (s *BanlistService) IsIPBanned(ctx context.Context, ip string) (*IsBannedDto, error) {
	return invoke[IsBannedDto](ctx, s.gw, BanlistIsIPBanned, nil, ip)
}

// UnbanIP pardons an IP address
func (s *BanlistService) UnbanIP(ctx context.Context, ip string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, BanlistUnbanIP, nil, ip)
}

// GetBannedPlayers lists all banned players
func (s *BanlistService) GetBannedPlayers(ctx context.Context) (*BannedPlayersDto, error) {
	return invoke[BannedPlayersDto](ctx, s.gw, BanlistGetBannedPlayers, nil)
}

// BanPlayer bans a player
func (s *BanlistService) BanPlayer(ctx context.Context, req BanPlayerRequest) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, BanlistBanPlayer, req)
}

// IsPlayerBanned checks if a player is banned
func (s *BanlistService) IsPlayerBanned(ctx context.Context, player string) (*IsBannedDto, error) {
	return invoke[IsBannedDto](ctx, s.gw, BanlistIsPlayerBanned, nil, player)
}

// UnbanPlayer pardons a player
func (s *BanlistService) UnbanPlayer(ctx context.Context, player string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, BanlistUnbanPlayer, nil, player)
}
