package webcraft

import "context"

// PlayersService groups the player endpoints. Players can be addressed by name or UUID.
type PlayersService struct{ gw *gateway }

// GetCount returns the number of online and offline players
func (s *PlayersService) GetCount(ctx context.Context) (*PlayerCountDto, error) {
	return invoke[PlayerCountDto](ctx, s.gw, PlayersGetCount, nil)
}

func (s *PlayersService) GetOnlinePlayers(ctx context.Context) (*PlayerNamesDto, error) {
	return invoke[PlayerNamesDto](ctx, s.gw, PlayersGetOnlinePlayers, nil)
}

func (s *PlayersService) GetOfflinePlayers(ctx context.Context) (*PlayerNamesDto, error) {
	return invoke[PlayerNamesDto](ctx, s.gw, PlayersGetOfflinePlayers, nil)
}

// GetPlayerInfo returns everything the server knows about a player
func (s *PlayersService) GetPlayerInfo(ctx context.Context, player string) (*PlayerDto, error) {
	return invoke[PlayerDto](ctx, s.gw, PlayersGetPlayerInfo, nil, player)
}

// FeedPlayer sets the food level of the player to the maximum
func (s *PlayersService) FeedPlayer(ctx context.Context, player string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, PlayersFeedPlayer, nil, player)
}

// GiveItems gives amount items to the player. An amount below 1 gives a single item.
func (s *PlayersService) GiveItems(ctx context.Context, player string, item string, amount int) (*SuccessResponse, error) {
	if amount < 1 {
		amount = 1
	}
	return invoke[SuccessResponse](ctx, s.gw, PlayersGiveItems, GiveRequest{Item: item, Amount: amount}, player)
}

// HealPlayer sets the health of the player to the maximum
func (s *PlayersService) HealPlayer(ctx context.Context, player string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, PlayersHealPlayer, nil, player)
}

// KickPlayer kicks the player. reason is optional
func (s *PlayersService) KickPlayer(ctx context.Context, player string, reason string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, PlayersKickPlayer, KickRequest{Reason: reason}, player)
}

func (s *PlayersService) KillPlayer(ctx context.Context, player string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, PlayersKillPlayer, nil, player)
}

func (s *PlayersService) StarvePlayer(ctx context.Context, player string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, PlayersStarvePlayer, nil, player)
}

// TeleportPlayer teleports the player to a location
func (s *PlayersService) TeleportPlayer(ctx context.Context, player string, to Location) (*SuccessResponse, error) {
	req := TeleportRequest{World: to.World, X: to.X, Y: to.Y, Z: to.Z}
	return invoke[SuccessResponse](ctx, s.gw, PlayersTeleportPlayer, req, player)
}

func (s *PlayersService) GetFoodLevel(ctx context.Context, player string) (*FoodLevelDto, error) {
	return invoke[FoodLevelDto](ctx, s.gw, PlayersGetFoodLevel, nil, player)
}

func (s *PlayersService) SetFoodLevel(ctx context.Context, player string, foodLevel int) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, PlayersSetFoodLevel, FoodLevelRequest{FoodLevel: foodLevel}, player)
}

func (s *PlayersService) GetHealth(ctx context.Context, player string) (*HealthDto, error) {
	return invoke[HealthDto](ctx, s.gw, PlayersGetHealth, nil, player)
}

func (s *PlayersService) SetHealth(ctx context.Context, player string, health float64) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, PlayersSetHealth, HealthRequest{Health: health}, player)
}

func (s *PlayersService) ClearInventory(ctx context.Context, player string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, PlayersClearInventory, nil, player)
}

func (s *PlayersService) GetInventory(ctx context.Context, player string) (*PlayerInventoryDto, error) {
	return invoke[PlayerInventoryDto](ctx, s.gw, PlayersGetInventory, nil, player)
}

func (s *PlayersService) GetInventorySlot(ctx context.Context, player string, slot Slot) (*SlotDto, error) {
	return invoke[SlotDto](ctx, s.gw, PlayersGetInventorySlot, nil, player, slot.String())
}

// SetInventorySlot replaces the content of an inventory slot
func (s *PlayersService) SetInventorySlot(ctx context.Context, player string, slot Slot, item string, amount int) (*SuccessResponse, error) {
	req := SlotRequest{Item: item, Amount: amount}
	return invoke[SuccessResponse](ctx, s.gw, PlayersSetInventorySlot, req, player, slot.String())
}

// GetLocation returns the current location of the player. World may be nil.
func (s *PlayersService) GetLocation(ctx context.Context, player string) (*LocationDto, error) {
	return invoke[LocationDto](ctx, s.gw, PlayersGetLocation, nil, player)
}

func (s *PlayersService) GetMaxHealth(ctx context.Context, player string) (*MaxHealthDto, error) {
	return invoke[MaxHealthDto](ctx, s.gw, PlayersGetMaxHealth, nil, player)
}

func (s *PlayersService) SetMaxHealth(ctx context.Context, player string, maxHealth float64) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, PlayersSetMaxHealth, MaxHealthRequest{MaxHealth: maxHealth}, player)
}

func (s *PlayersService) GetSpawnPoint(ctx context.Context, player string) (*PlayerSpawnPointDto, error) {
	return invoke[PlayerSpawnPointDto](ctx, s.gw, PlayersGetSpawnPoint, nil, player)
}
