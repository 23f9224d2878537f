package webcraft

import "time"

// SuccessResponse is the generic acknowledgment returned by endpoints without a richer payload
type SuccessResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body the server sends with failed requests.
// Only Message is used for the APIError.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AdminDto is an operator
type AdminDto struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// AdminsDto lists all operators
type AdminsDto struct {
	Admins []AdminDto `json:"admins"`
}

// IsAdminDto tells if a player is an operator
type IsAdminDto struct {
	Admin bool `json:"admin"`
}

// APIDto describes the API plugin itself
type APIDto struct {
	Name          string   `json:"name"`
	Version       string   `json:"version"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	Documentation string   `json:"documentation"`
	Website       string   `json:"website"`
}

// BannedIPDto is a banned IP address
type BannedIPDto struct {
	IP     string `json:"ip"`
	Reason string `json:"reason"`
	Source string `json:"source"`
	// Expires is a unix timestamp in milliseconds
	Expires int64 `json:"expires"`
}

// ExpiresAt returns Expires as time
func (b BannedIPDto) ExpiresAt() time.Time {
	return time.UnixMilli(b.Expires)
}

// BannedIPsDto lists all banned IP addresses
type BannedIPsDto struct {
	BannedIPs []BannedIPDto `json:"bannedIps"`
}

// BannedPlayerDto is a banned player
type BannedPlayerDto struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Source string `json:"source"`
	// Expires is a unix timestamp in milliseconds
	Expires int64 `json:"expires"`
}

// ExpiresAt returns Expires as time
func (b BannedPlayerDto) ExpiresAt() time.Time {
	return time.UnixMilli(b.Expires)
}

// BannedPlayersDto lists all banned players
type BannedPlayersDto struct {
	BannedPlayers []BannedPlayerDto `json:"bannedPlayers"`
}

// IsBannedDto tells if a player or IP is banned
type IsBannedDto struct {
	Banned bool `json:"banned"`
}

// BlockDto is a block at a position
type BlockDto struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

// BlocksDto is a list of blocks
type BlocksDto struct {
	Blocks []BlockDto `json:"blocks"`
}

// BlockNamesDto lists all block names
type BlockNamesDto struct {
	Blocks []string `json:"blocks"`
}

// CustomNameDto is the custom name of an entity (nil if the entity has none)
type CustomNameDto struct {
	CustomName *string `json:"customName,omitempty"`
}

// DifficultyDto is the difficulty of a world
type DifficultyDto struct {
	Difficulty Difficulty `json:"difficulty"`
}

// EntityDto describes an entity
type EntityDto struct {
	ID         int64   `json:"id"`
	UniqueID   string  `json:"uniqueId"`
	EntityType string  `json:"entityType"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	World      string  `json:"world"`
	CustomName *string `json:"customName,omitempty"`
	IsDead     bool    `json:"isDead"`
	Health     float64 `json:"health"`
	MaxHealth  float64 `json:"maxHealth"`
}

// FoodLevelDto is the food level of a player
type FoodLevelDto struct {
	FoodLevel int `json:"foodLevel"`
}

// HealthDto is the health of a player or entity
type HealthDto struct {
	Health float64 `json:"health"`
}

// IsWhitelistedDto tells if a player is whitelisted
type IsWhitelistedDto struct {
	Whitelisted bool `json:"whitelisted"`
}

// ItemNamesDto lists all item names
type ItemNamesDto struct {
	Items []string `json:"items"`
}

// LocationDto is a location in a world.
// World is optional: the server currently omits it even though its schema lists it.
type LocationDto struct {
	World *string `json:"world,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

// MaxHealthDto is the maximum health of a player or entity
type MaxHealthDto struct {
	MaxHealth float64 `json:"maxHealth"`
}

// PingDto is the answer to a ping
type PingDto struct {
	Response string `json:"response"`
}

// PlayerCountDto counts online and offline players
type PlayerCountDto struct {
	Online  int `json:"online"`
	Offline int `json:"offline"`
}

// PlayerDto describes a player
type PlayerDto struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
	// FirstLogin is a unix timestamp in milliseconds
	FirstLogin int64 `json:"firstLogin"`
	// LastLogin is a unix timestamp in milliseconds
	LastLogin     int64   `json:"lastLogin"`
	Banned        bool    `json:"banned"`
	Op            bool    `json:"op"`
	Whitelisted   bool    `json:"whitelisted"`
	IP            string  `json:"ip"`
	EntityID      int64   `json:"entityID"`
	Ping          int     `json:"ping"`
	AllowedFlight bool    `json:"allowedFlight"`
	Online        bool    `json:"online"`
	Exhaustion    float64 `json:"exhaustion"`
	Exp           float64 `json:"exp"`
	FoodLevel     int     `json:"foodLevel"`
	Health        float64 `json:"health"`
	Level         int     `json:"level"`
	World         string  `json:"world"`
}

// FirstLoginAt returns FirstLogin as time
func (p PlayerDto) FirstLoginAt() time.Time {
	return time.UnixMilli(p.FirstLogin)
}

// LastLoginAt returns LastLogin as time
func (p PlayerDto) LastLoginAt() time.Time {
	return time.UnixMilli(p.LastLogin)
}

// PlayerNamesDto is a list of player names
type PlayerNamesDto struct {
	Players []string `json:"players"`
}

// PlayerSpawnPointDto is the spawn point of a player. Defined is false if the player
// has no own spawn point
type PlayerSpawnPointDto struct {
	Defined bool    `json:"defined"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
}

// PluginDto describes a plugin
type PluginDto struct {
	Name         string   `json:"name"`
	Enabled      bool     `json:"enabled"`
	Version      string   `json:"version"`
	Description  string   `json:"description"`
	Website      string   `json:"website"`
	Authors      []string `json:"authors"`
	Contributors []string `json:"contributors"`
}

// PluginNamesDto lists all plugin names
type PluginNamesDto struct {
	Plugins []string `json:"plugins"`
}

// SeedDto is the seed of a world
type SeedDto struct {
	Seed string `json:"seed"`
}

// ServerDto describes the Minecraft server
type ServerDto struct {
	MaxPlayers    int    `json:"maxPlayers"`
	Name          string `json:"name"`
	Version       string `json:"version"`
	BukkitVersion string `json:"bukkitVersion"`
	Address       string `json:"address"`
	Port          int    `json:"port"`
	Motd          string `json:"motd"`
}

// SlotDto is the content of an inventory slot
type SlotDto struct {
	Slot   Slot   `json:"slot"`
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

// PlayerInventoryDto is the inventory of a player
type PlayerInventoryDto struct {
	Slots []SlotDto `json:"slots"`
}

// SpawnPointDto is the spawn point of a world
type SpawnPointDto struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SpawnableEntitiesDto lists the entity types that can be spawned
type SpawnableEntitiesDto struct {
	Entities []string `json:"entities"`
}

// TimeDto is the time of a world
type TimeDto struct {
	Time              int64  `json:"time"`
	HumanReadableTime string `json:"humanReadableTime"`
}

// WeatherDto is the weather of a world
type WeatherDto struct {
	Weather  Weather `json:"weather"`
	Duration int     `json:"duration"`
}

// WhitelistDto describes the whitelist settings
type WhitelistDto struct {
	Enabled  bool `json:"enabled"`
	Enforced bool `json:"enforced"`
}

// WhitelistedPlayerDto is a whitelisted player
type WhitelistedPlayerDto struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// WhitelistedPlayersDto lists all whitelisted players
type WhitelistedPlayersDto struct {
	WhitelistedPlayers []WhitelistedPlayerDto `json:"whitelistedPlayers"`
}

// WorldDto describes a world
type WorldDto struct {
	Name          string     `json:"name"`
	Time          float64    `json:"time"`
	Difficulty    Difficulty `json:"difficulty"`
	Hardcore      bool       `json:"hardcore"`
	PVP           bool       `json:"pvp"`
	SpawnAnimals  bool       `json:"spawnAnimals"`
	SpawnMonsters bool       `json:"spawnMonsters"`
	Seed          string     `json:"seed"`
}

// WorldNamesDto lists all world names
type WorldNamesDto struct {
	Worlds []string `json:"worlds"`
}
