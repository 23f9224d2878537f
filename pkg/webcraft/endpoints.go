package webcraft

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Operation names one API operation, formatted as "<group>.<Method>"
type Operation string

// Endpoint describes how an operation maps to the HTTP API
type Endpoint struct {
	Operation Operation
	Group     string
	Method    string
	// Path is a template, parameters are written as {name}
	Path string
	// Request is the type of the request record (nil if the operation has no body)
	Request reflect.Type
	// Response is the type the JSON result is decoded into
	Response reflect.Type
}

// Params returns the names of the path parameters in order of appearance
func (e Endpoint) Params() []string {
	matches := pathParam.FindAllStringSubmatch(e.Path, -1)
	params := make([]string, len(matches))
	for i, m := range matches {
		params[i] = m[1]
	}
	return params
}

// Expand substitutes the path parameters (in order) and escapes them
func (e Endpoint) Expand(args ...string) (string, error) {
	if want := len(e.Params()); want != len(args) {
		return "", fmt.Errorf("%s: expected %d path arguments, got %d", e.Operation, want, len(args))
	}
	i := 0
	expanded := pathParam.ReplaceAllStringFunc(e.Path, func(string) string {
		arg := url.PathEscape(args[i])
		i++
		return arg
	})
	return expanded, nil
}

var pathParam = regexp.MustCompile(`\{([a-zA-Z]+)\}`)

const (
	AdminGetAdmins     Operation = "admin.GetAdmins"
	AdminIsPlayerAdmin Operation = "admin.IsPlayerAdmin"

	APIGetAPIInfo Operation = "api.GetAPIInfo"

	BanlistGetBannedIPs     Operation = "banlist.GetBannedIPs"
	BanlistBanIP            Operation = "banlist.BanIP"
	BanlistIsIPBanned       Operation = "banlist.IsIPBanned"
	BanlistUnbanIP          Operation = "banlist.UnbanIP"
	BanlistGetBannedPlayers Operation = "banlist.GetBannedPlayers"
	BanlistBanPlayer        Operation = "banlist.BanPlayer"
	BanlistIsPlayerBanned   Operation = "banlist.IsPlayerBanned"
	BanlistUnbanPlayer      Operation = "banlist.UnbanPlayer"

	ChatBroadcastAll     Operation = "chat.BroadcastAll"
	ChatBroadcastOps     Operation = "chat.BroadcastOps"
	ChatBroadcastPlayers Operation = "chat.BroadcastPlayers"

	EntitiesGetSpawnableMobs Operation = "entities.GetSpawnableMobs"
	EntitiesSpawnMob         Operation = "entities.SpawnMob"
	EntitiesGetEntity        Operation = "entities.GetEntity"
	EntitiesHealEntity       Operation = "entities.HealEntity"
	EntitiesKillEntity       Operation = "entities.KillEntity"
	EntitiesGetCustomName    Operation = "entities.GetCustomName"
	EntitiesSetCustomName    Operation = "entities.SetCustomName"
	EntitiesGetHealth        Operation = "entities.GetHealth"
	EntitiesSetHealth        Operation = "entities.SetHealth"
	EntitiesGetMaxHealth     Operation = "entities.GetMaxHealth"
	EntitiesSetMaxHealth     Operation = "entities.SetMaxHealth"

	ItemsGetAllBlocks Operation = "items.GetAllBlocks"
	ItemsGetAllItems  Operation = "items.GetAllItems"

	PingPing Operation = "ping.Ping"

	PlayersGetCount          Operation = "players.GetCount"
	PlayersGetOnlinePlayers  Operation = "players.GetOnlinePlayers"
	PlayersGetOfflinePlayers Operation = "players.GetOfflinePlayers"
	PlayersGetPlayerInfo     Operation = "players.GetPlayerInfo"
	PlayersFeedPlayer        Operation = "players.FeedPlayer"
	PlayersGiveItems         Operation = "players.GiveItems"
	PlayersHealPlayer        Operation = "players.HealPlayer"
	PlayersKickPlayer        Operation = "players.KickPlayer"
	PlayersKillPlayer        Operation = "players.KillPlayer"
	PlayersStarvePlayer      Operation = "players.StarvePlayer"
	PlayersTeleportPlayer    Operation = "players.TeleportPlayer"
	PlayersGetFoodLevel      Operation = "players.GetFoodLevel"
	PlayersSetFoodLevel      Operation = "players.SetFoodLevel"
	PlayersGetHealth         Operation = "players.GetHealth"
	PlayersSetHealth         Operation = "players.SetHealth"
	PlayersClearInventory    Operation = "players.ClearInventory"
	PlayersGetInventory      Operation = "players.GetInventory"
	PlayersGetInventorySlot  Operation = "players.GetInventorySlot"
	PlayersSetInventorySlot  Operation = "players.SetInventorySlot"
	PlayersGetLocation       Operation = "players.GetLocation"
	PlayersGetMaxHealth      Operation = "players.GetMaxHealth"
	PlayersSetMaxHealth      Operation = "players.SetMaxHealth"
	PlayersGetSpawnPoint     Operation = "players.GetSpawnPoint"

	PluginsGetAllPlugins Operation = "plugins.GetAllPlugins"
	PluginsGetPluginInfo Operation = "plugins.GetPluginInfo"

	ServerGetServerInfo Operation = "server.GetServerInfo"

	WhitelistGetWhitelistInfo      Operation = "whitelist.GetWhitelistInfo"
	WhitelistGetWhitelistedPlayers Operation = "whitelist.GetWhitelistedPlayers"
	WhitelistWhitelistPlayer       Operation = "whitelist.WhitelistPlayer"
	WhitelistUnwhitelistPlayer     Operation = "whitelist.UnwhitelistPlayer"
	WhitelistIsPlayerWhitelisted   Operation = "whitelist.IsPlayerWhitelisted"

	WorldsGetAllWorlds  Operation = "worlds.GetAllWorlds"
	WorldsGetWorldInfo  Operation = "worlds.GetWorldInfo"
	WorldsSaveWorld     Operation = "worlds.SaveWorld"
	WorldsGetBlocks     Operation = "worlds.GetBlocks"
	WorldsSetBlocks     Operation = "worlds.SetBlocks"
	WorldsGetBlock      Operation = "worlds.GetBlock"
	WorldsSetBlock      Operation = "worlds.SetBlock"
	WorldsGetDifficulty Operation = "worlds.GetDifficulty"
	WorldsSetDifficulty Operation = "worlds.SetDifficulty"
	WorldsDropItems     Operation = "worlds.DropItems"
	WorldsGetSeed       Operation = "worlds.GetSeed"
	WorldsGetSpawnPoint Operation = "worlds.GetSpawnPoint"
	WorldsSetSpawnPoint Operation = "worlds.SetSpawnPoint"
	WorldsGetTime       Operation = "worlds.GetTime"
	WorldsSetTime       Operation = "worlds.SetTime"
	WorldsGetWeather    Operation = "worlds.GetWeather"
	WorldsSetWeather    Operation = "worlds.SetWeather"
)

// typeOf returns the reflect.Type of T
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func get[Resp any](path string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: path, Response: typeOf[Resp]()}
}

func post[Req, Resp any](path string) Endpoint {
	return Endpoint{Method: http.MethodPost, Path: path, Request: typeOf[Req](), Response: typeOf[Resp]()}
}

func patch[Req, Resp any](path string) Endpoint {
	return Endpoint{Method: http.MethodPatch, Path: path, Request: typeOf[Req](), Response: typeOf[Resp]()}
}

// none marks operations without request body
type none struct{}

var endpoints = map[Operation]Endpoint{
	AdminGetAdmins:     get[AdminsDto]("/api/admins"),
	AdminIsPlayerAdmin: get[IsAdminDto]("/api/admins/{player}"),

	APIGetAPIInfo: get[APIDto]("/api/api"),

	BanlistGetBannedIPs:     get[BannedIPsDto]("/api/banlist/ips"),
	BanlistBanIP:            post[BanIPRequest, SuccessResponse]("/api/banlist/ips/ban"),
	BanlistIsIPBanned:       get[IsBannedDto]("/api/banlist/ips/{ip}"),
	BanlistUnbanIP:          post[none, SuccessResponse]("/api/banlist/ips/{ip}/pardon"),
	BanlistGetBannedPlayers: get[BannedPlayersDto]("/api/banlist/players"),
	BanlistBanPlayer:        post[BanPlayerRequest, SuccessResponse]("/api/banlist/players/ban"),
	BanlistIsPlayerBanned:   get[IsBannedDto]("/api/banlist/players/{player}"),
	BanlistUnbanPlayer:      post[none, SuccessResponse]("/api/banlist/players/{player}/pardon"),

	ChatBroadcastAll:     post[BroadcastRequest, SuccessResponse]("/api/chat/broadcast/all"),
	ChatBroadcastOps:     post[BroadcastRequest, SuccessResponse]("/api/chat/broadcast/ops"),
	ChatBroadcastPlayers: post[BroadcastRequest, SuccessResponse]("/api/chat/broadcast/players"),

	EntitiesGetSpawnableMobs: get[SpawnableEntitiesDto]("/api/entities/mobs/spawnable"),
	EntitiesSpawnMob:         post[SpawnMobRequest, EntityDto]("/api/entities/mobs/spawn"),
	EntitiesGetEntity:        get[EntityDto]("/api/entities/{entity}"),
	EntitiesHealEntity:       post[none, EntityDto]("/api/entities/{entity}/heal"),
	EntitiesKillEntity:       post[none, EntityDto]("/api/entities/{entity}/kill"),
	EntitiesGetCustomName:    get[CustomNameDto]("/api/entities/{entity}/customname"),
	EntitiesSetCustomName:    patch[CustomNameRequest, EntityDto]("/api/entities/{entity}/customname"),
	EntitiesGetHealth:        get[HealthDto]("/api/entities/{entity}/health"),
	EntitiesSetHealth:        patch[HealthRequest, EntityDto]("/api/entities/{entity}/health"),
	EntitiesGetMaxHealth:     get[MaxHealthDto]("/api/entities/{entity}/maxhealth"),
	EntitiesSetMaxHealth:     patch[MaxHealthRequest, EntityDto]("/api/entities/{entity}/maxhealth"),

	ItemsGetAllBlocks: get[BlockNamesDto]("/api/blocks"),
	ItemsGetAllItems:  get[ItemNamesDto]("/api/items"),

	PingPing: get[PingDto]("/api/ping"),

	PlayersGetCount:          get[PlayerCountDto]("/api/players"),
	PlayersGetOnlinePlayers:  get[PlayerNamesDto]("/api/players/online"),
	PlayersGetOfflinePlayers: get[PlayerNamesDto]("/api/players/offline"),
	PlayersGetPlayerInfo:     get[PlayerDto]("/api/players/{player}"),
	PlayersFeedPlayer:        post[none, SuccessResponse]("/api/players/{player}/feed"),
	PlayersGiveItems:         post[GiveRequest, SuccessResponse]("/api/players/{player}/give"),
	PlayersHealPlayer:        post[none, SuccessResponse]("/api/players/{player}/heal"),
	PlayersKickPlayer:        post[KickRequest, SuccessResponse]("/api/players/{player}/kick"),
	PlayersKillPlayer:        post[none, SuccessResponse]("/api/players/{player}/kill"),
	PlayersStarvePlayer:      post[none, SuccessResponse]("/api/players/{player}/starve"),
	PlayersTeleportPlayer:    post[TeleportRequest, SuccessResponse]("/api/players/{player}/teleport"),
	PlayersGetFoodLevel:      get[FoodLevelDto]("/api/players/{player}/foodlevel"),
	PlayersSetFoodLevel:      patch[FoodLevelRequest, SuccessResponse]("/api/players/{player}/foodlevel"),
	PlayersGetHealth:         get[HealthDto]("/api/players/{player}/health"),
	PlayersSetHealth:         patch[HealthRequest, SuccessResponse]("/api/players/{player}/health"),
	PlayersClearInventory:    post[none, SuccessResponse]("/api/players/{player}/inventory/clear"),
	PlayersGetInventory:      get[PlayerInventoryDto]("/api/players/{player}/inventory/get"),
	PlayersGetInventorySlot:  get[SlotDto]("/api/players/{player}/inventory/slots/{slot}"),
	PlayersSetInventorySlot:  patch[SlotRequest, SuccessResponse]("/api/players/{player}/inventory/slots/{slot}"),
	PlayersGetLocation:       get[LocationDto]("/api/players/{player}/location"),
	PlayersGetMaxHealth:      get[MaxHealthDto]("/api/players/{player}/maxhealth"),
	PlayersSetMaxHealth:      patch[MaxHealthRequest, SuccessResponse]("/api/players/{player}/maxhealth"),
	PlayersGetSpawnPoint:     get[PlayerSpawnPointDto]("/api/players/{player}/spawnpoint"),

	PluginsGetAllPlugins: get[PluginNamesDto]("/api/plugins"),
	PluginsGetPluginInfo: get[PluginDto]("/api/plugins/{plugin}"),

	ServerGetServerInfo: get[ServerDto]("/api/server"),

	WhitelistGetWhitelistInfo:      get[WhitelistDto]("/api/whitelist"),
	WhitelistGetWhitelistedPlayers: get[WhitelistedPlayersDto]("/api/whitelist/players"),
	WhitelistWhitelistPlayer:       post[WhitelistPlayerRequest, SuccessResponse]("/api/whitelist/players/add"),
	WhitelistUnwhitelistPlayer:     post[UnwhitelistPlayerRequest, SuccessResponse]("/api/whitelist/players/remove"),
	WhitelistIsPlayerWhitelisted:   get[IsWhitelistedDto]("/api/whitelist/players/{player}"),

	WorldsGetAllWorlds:  get[WorldNamesDto]("/api/worlds"),
	WorldsGetWorldInfo:  get[WorldDto]("/api/worlds/{world}"),
	WorldsSaveWorld:     post[none, SuccessResponse]("/api/worlds/{world}/save"),
	WorldsGetBlocks:     post[GetBlocksRequest, BlocksDto]("/api/worlds/{world}/blocks"),
	WorldsSetBlocks:     patch[SetBlocksRequest, SuccessResponse]("/api/worlds/{world}/blocks"),
	WorldsGetBlock:      post[GetBlockRequest, BlockDto]("/api/worlds/{world}/blocks/block"),
	WorldsSetBlock:      patch[SetBlockRequest, SuccessResponse]("/api/worlds/{world}/blocks/block"),
	WorldsGetDifficulty: get[DifficultyDto]("/api/worlds/{world}/difficulty"),
	WorldsSetDifficulty: patch[SetDifficultyRequest, SuccessResponse]("/api/worlds/{world}/difficulty"),
	WorldsDropItems:     post[DropItemsRequest, SuccessResponse]("/api/worlds/{world}/items/drop"),
	WorldsGetSeed:       get[SeedDto]("/api/worlds/{world}/seed"),
	WorldsGetSpawnPoint: get[SpawnPointDto]("/api/worlds/{world}/spawnpoint"),
	WorldsSetSpawnPoint: patch[SetSpawnPointRequest, SuccessResponse]("/api/worlds/{world}/spawnpoint"),
	WorldsGetTime:       get[TimeDto]("/api/worlds/{world}/time"),
	WorldsSetTime:       patch[SetTimeRequest, SuccessResponse]("/api/worlds/{world}/time"),
	WorldsGetWeather:    get[WeatherDto]("/api/worlds/{world}/weather"),
	WorldsSetWeather:    patch[SetWeatherRequest, SuccessResponse]("/api/worlds/{world}/weather"),
}

func init() {
	noBody := typeOf[none]()
	for op, ep := range endpoints {
		ep.Operation = op
		ep.Group, _, _ = cutOperation(op)
		if ep.Request == noBody {
			ep.Request = nil
		}
		endpoints[op] = ep
	}
}

// Endpoints returns all operations sorted by name
func Endpoints() []Endpoint {
	ops := maps.Keys(endpoints)
	slices.Sort(ops)
	all := make([]Endpoint, len(ops))
	for i, op := range ops {
		all[i] = endpoints[op]
	}
	return all
}

// Lookup returns the endpoint of an operation
func Lookup(op Operation) (Endpoint, bool) {
	ep, ok := endpoints[op]
	return ep, ok
}

func cutOperation(op Operation) (group, method string, ok bool) {
	group, method, ok = strings.Cut(string(op), ".")
	if !ok {
		return "", group, false
	}
	return group, method, true
}

// Method returns the method part of the operation name (e.g. "GetPlayerInfo")
func (o Operation) Method() string {
	_, method, _ := cutOperation(o)
	return method
}

// Group returns the group part of the operation name (e.g. "players")
func (o Operation) Group() string {
	group, _, _ := cutOperation(o)
	return group
}

// send executes an endpoint with the given path arguments and (optional) request body.
// It returns the raw JSON result.
func (g *gateway) send(ctx context.Context, ep Endpoint, body interface{}, args ...string) (json.RawMessage, error) {
	path, err := ep.Expand(args...)
	if err != nil {
		return nil, invalidRequest(err)
	}
	if body != nil {
		if err := validateRequest(body); err != nil {
			return nil, err
		}
	}

	switch ep.Method {
	case http.MethodGet:
		return g.getJSON(ctx, path, nil)
	case http.MethodPost:
		return g.postJSON(ctx, path, body)
	case http.MethodPatch:
		return g.patchJSON(ctx, path, body)
	}
	return nil, invalidRequest(fmt.Errorf("%s: unsupported method %s", ep.Operation, ep.Method))
}

// invoke runs an operation of the table and decodes the result into Resp
func invoke[Resp any](ctx context.Context, g *gateway, op Operation, body interface{}, args ...string) (*Resp, error) {
	ep, ok := endpoints[op]
	if !ok {
		panic("webcraft: unknown operation " + string(op))
	}
	if (body == nil) != (ep.Request == nil) {
		panic(fmt.Sprintf("webcraft: %s called with unexpected body %T", op, body))
	}
	if ep.Response != typeOf[Resp]() {
		panic(fmt.Sprintf("webcraft: %s decodes into %s, not %s", op, ep.Response, typeOf[Resp]()))
	}

	raw, err := g.send(ctx, ep, body, args...)
	if err != nil {
		return nil, err
	}

	result := new(Resp)
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, malformed(0, err)
	}
	return result, nil
}
