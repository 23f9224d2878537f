package webcraft

// Request records. JSON names are the server's field names. Optional fields use
// `omitempty` so they are left out of the body instead of being sent as null.

// AuthenticateRequest is sent to /api/authenticate
type AuthenticateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// BanIPRequest bans an IP address
type BanIPRequest struct {
	IP         string `json:"ip" validate:"required"`
	Reason     string `json:"reason,omitempty"`
	Expiration string `json:"expiration,omitempty"`
	Source     string `json:"source,omitempty"`
}

// BanPlayerRequest bans a player
type BanPlayerRequest struct {
	Player     string `json:"player" validate:"required"`
	Reason     string `json:"reason,omitempty"`
	Expiration string `json:"expiration,omitempty"`
	Source     string `json:"source,omitempty"`
}

// BroadcastRequest broadcasts a chat message
type BroadcastRequest struct {
	Message string `json:"message" validate:"required"`
}

// CustomNameRequest sets the custom name of an entity
type CustomNameRequest struct {
	CustomName string `json:"customName" validate:"required"`
}

// DropItemsRequest drops items at a location
type DropItemsRequest struct {
	Item   string `json:"item" validate:"required"`
	Amount int    `json:"amount"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Z      int    `json:"z"`
}

// FoodLevelRequest sets the food level of a player
type FoodLevelRequest struct {
	FoodLevel int `json:"foodLevel"`
}

// GetBlockRequest queries a single block
type GetBlockRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// GetBlocksRequest queries multiple blocks
type GetBlocksRequest struct {
	Blocks []GetBlockRequest `json:"blocks" validate:"required,dive"`
}

// GiveRequest gives items to a player
type GiveRequest struct {
	Item   string `json:"item" validate:"required"`
	Amount int    `json:"amount"`
}

// HealthRequest sets the health of a player or entity
type HealthRequest struct {
	Health float64 `json:"health"`
}

// KickRequest kicks a player
type KickRequest struct {
	Reason string `json:"reason,omitempty"`
}

// MaxHealthRequest sets the maximum health of a player or entity
type MaxHealthRequest struct {
	MaxHealth float64 `json:"maxHealth"`
}

// SetBlockRequest places a block
type SetBlockRequest struct {
	Block string `json:"block" validate:"required"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
}

// SetBlocksRequest places multiple blocks
type SetBlocksRequest struct {
	Blocks []SetBlockRequest `json:"blocks" validate:"required,dive"`
}

// SetDifficultyRequest sets the world difficulty
type SetDifficultyRequest struct {
	Difficulty Difficulty `json:"difficulty" validate:"required"`
}

// SetSpawnPointRequest sets the world spawn point
type SetSpawnPointRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// SetTimeRequest sets the world time (in ticks)
type SetTimeRequest struct {
	Time int64 `json:"time"`
}

// SetWeatherRequest sets the world weather for duration ticks
type SetWeatherRequest struct {
	Weather  Weather `json:"weather" validate:"required"`
	Duration int     `json:"duration"`
}

// SlotRequest sets a player's inventory slot
type SlotRequest struct {
	Item   string `json:"item" validate:"required"`
	Amount int    `json:"amount"`
}

// SpawnMobRequest spawns a mob
type SpawnMobRequest struct {
	Name  string `json:"name" validate:"required"`
	World string `json:"world" validate:"required"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
}

// TeleportRequest teleports a player
type TeleportRequest struct {
	World string  `json:"world" validate:"required"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

// WhitelistPlayerRequest adds a player to the whitelist
type WhitelistPlayerRequest struct {
	Name string `json:"name" validate:"required"`
}

// UnwhitelistPlayerRequest removes a player from the whitelist
type UnwhitelistPlayerRequest struct {
	Name string `json:"name" validate:"required"`
}
