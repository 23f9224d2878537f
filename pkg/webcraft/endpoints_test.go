package webcraft

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	body   string
}

// recorder answers every request with an empty JSON object and remembers the last request
type recorder struct {
	mu   sync.Mutex
	last recorded
}

func (rec *recorder) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	rec.mu.Lock()
	rec.last = recorded{method: r.Method, path: r.URL.EscapedPath(), body: string(body)}
	rec.mu.Unlock()
	writeJSON(w, 200, `{}`)
}

func (rec *recorder) get() recorded {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.last
}

func newRecordingClient(t *testing.T) (*Client, *recorder) {
	rec := &recorder{}
	srv := newTestServer(t, rec.handle)
	client := New(srv.URL)
	t.Cleanup(func() { client.Close() })
	return client, rec
}

type call struct {
	path string
	body string
	fn   func(ctx context.Context, c *Client) error
}

func ignore[T any](_ T, err error) error { return err }

// facadeCalls calls every operation once through its resource group
var facadeCalls = map[Operation]call{
	AdminGetAdmins: {"/api/admins", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Admin.GetAdmins(ctx))
	}},
	AdminIsPlayerAdmin: {"/api/admins/Steve%20Jobs", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Admin.IsPlayerAdmin(ctx, "Steve Jobs"))
	}},
	APIGetAPIInfo: {"/api/api", "", func(ctx context.Context, c *Client) error {
		return ignore(c.API.GetAPIInfo(ctx))
	}},

	BanlistGetBannedIPs: {"/api/banlist/ips", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Banlist.GetBannedIPs(ctx))
	}},
	BanlistBanIP: {"/api/banlist/ips/ban", `{"ip":"10.0.0.1","reason":"spam"}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Banlist.BanIP(ctx, BanIPRequest{IP: "10.0.0.1", Reason: "spam"}))
	}},
	BanlistIsIPBanned: {"/api/banlist/ips/10.0.0.1", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Banlist.IsIPBanned(ctx, "10.0.0.1"))
	}},
	BanlistUnbanIP: {"/api/banlist/ips/10.0.0.1/pardon", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Banlist.UnbanIP(ctx, "10.0.0.1"))
	}},
	BanlistGetBannedPlayers: {"/api/banlist/players", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Banlist.GetBannedPlayers(ctx))
	}},
	BanlistBanPlayer: {"/api/banlist/players/ban", `{"player":"Steve","expiration":"2030-01-01T00:00:00Z"}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Banlist.BanPlayer(ctx, BanPlayerRequest{Player: "Steve", Expiration: "2030-01-01T00:00:00Z"}))
	}},
	BanlistIsPlayerBanned: {"/api/banlist/players/Steve", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Banlist.IsPlayerBanned(ctx, "Steve"))
	}},
	BanlistUnbanPlayer: {"/api/banlist/players/Steve/pardon", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Banlist.UnbanPlayer(ctx, "Steve"))
	}},

	ChatBroadcastAll: {"/api/chat/broadcast/all", `{"message":"hello"}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Chat.BroadcastAll(ctx, "hello"))
	}},
	ChatBroadcastOps: {"/api/chat/broadcast/ops", `{"message":"hello ops"}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Chat.BroadcastOps(ctx, "hello ops"))
	}},
	ChatBroadcastPlayers: {"/api/chat/broadcast/players", `{"message":"hello players"}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Chat.BroadcastPlayers(ctx, "hello players"))
	}},

	EntitiesGetSpawnableMobs: {"/api/entities/mobs/spawnable", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Entities.GetSpawnableMobs(ctx))
	}},
	EntitiesSpawnMob: {"/api/entities/mobs/spawn", `{"name":"zombie","world":"world","x":1,"y":64,"z":-3}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Entities.SpawnMob(ctx, SpawnMobRequest{Name: "zombie", World: "world", X: 1, Y: 64, Z: -3}))
	}},
	EntitiesGetEntity: {"/api/entities/42", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Entities.GetEntity(ctx, "42"))
	}},
	EntitiesHealEntity: {"/api/entities/42/heal", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Entities.HealEntity(ctx, "42"))
	}},
	EntitiesKillEntity: {"/api/entities/42/kill", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Entities.KillEntity(ctx, "42"))
	}},
	EntitiesGetCustomName: {"/api/entities/42/customname", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Entities.GetCustomName(ctx, "42"))
	}},
	EntitiesSetCustomName: {"/api/entities/42/customname", `{"customName":"Bob"}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Entities.SetCustomName(ctx, "42", "Bob"))
	}},
	EntitiesGetHealth: {"/api/entities/42/health", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Entities.GetHealth(ctx, "42"))
	}},
	EntitiesSetHealth: {"/api/entities/42/health", `{"health":12.5}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Entities.SetHealth(ctx, "42", 12.5))
	}},
	EntitiesGetMaxHealth: {"/api/entities/42/maxhealth", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Entities.GetMaxHealth(ctx, "42"))
	}},
	EntitiesSetMaxHealth: {"/api/entities/42/maxhealth", `{"maxHealth":40}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Entities.SetMaxHealth(ctx, "42", 40))
	}},

	ItemsGetAllBlocks: {"/api/blocks", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Items.GetAllBlocks(ctx))
	}},
	ItemsGetAllItems: {"/api/items", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Items.GetAllItems(ctx))
	}},
	PingPing: {"/api/ping", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Ping.Ping(ctx))
	}},

	PlayersGetCount: {"/api/players", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GetCount(ctx))
	}},
	PlayersGetOnlinePlayers: {"/api/players/online", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GetOnlinePlayers(ctx))
	}},
	PlayersGetOfflinePlayers: {"/api/players/offline", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GetOfflinePlayers(ctx))
	}},
	PlayersGetPlayerInfo: {"/api/players/Steve%20Jobs", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GetPlayerInfo(ctx, "Steve Jobs"))
	}},
	PlayersFeedPlayer: {"/api/players/Steve/feed", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.FeedPlayer(ctx, "Steve"))
	}},
	PlayersGiveItems: {"/api/players/Steve/give", `{"item":"diamond","amount":1}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GiveItems(ctx, "Steve", "diamond", 0))
	}},
	PlayersHealPlayer: {"/api/players/Steve/heal", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.HealPlayer(ctx, "Steve"))
	}},
	PlayersKickPlayer: {"/api/players/Steve/kick", `{}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Players.KickPlayer(ctx, "Steve", ""))
	}},
	PlayersKillPlayer: {"/api/players/Steve/kill", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.KillPlayer(ctx, "Steve"))
	}},
	PlayersStarvePlayer: {"/api/players/Steve/starve", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.StarvePlayer(ctx, "Steve"))
	}},
	PlayersTeleportPlayer: {"/api/players/Steve/teleport", `{"world":"world_nether","x":1.5,"y":70,"z":-2}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Players.TeleportPlayer(ctx, "Steve", Location{World: "world_nether", X: 1.5, Y: 70, Z: -2}))
	}},
	PlayersGetFoodLevel: {"/api/players/Steve/foodlevel", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GetFoodLevel(ctx, "Steve"))
	}},
	PlayersSetFoodLevel: {"/api/players/Steve/foodlevel", `{"foodLevel":20}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Players.SetFoodLevel(ctx, "Steve", 20))
	}},
	PlayersGetHealth: {"/api/players/Steve/health", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GetHealth(ctx, "Steve"))
	}},
	PlayersSetHealth: {"/api/players/Steve/health", `{"health":20}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Players.SetHealth(ctx, "Steve", 20))
	}},
	PlayersClearInventory: {"/api/players/Steve/inventory/clear", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.ClearInventory(ctx, "Steve"))
	}},
	PlayersGetInventory: {"/api/players/Steve/inventory/get", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GetInventory(ctx, "Steve"))
	}},
	PlayersGetInventorySlot: {"/api/players/Steve/inventory/slots/off_hand", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GetInventorySlot(ctx, "Steve", SlotOffHand))
	}},
	PlayersSetInventorySlot: {"/api/players/Steve/inventory/slots/head", `{"item":"diamond_helmet","amount":1}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Players.SetInventorySlot(ctx, "Steve", SlotHead, "diamond_helmet", 1))
	}},
	PlayersGetLocation: {"/api/players/Steve/location", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GetLocation(ctx, "Steve"))
	}},
	PlayersGetMaxHealth: {"/api/players/Steve/maxhealth", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GetMaxHealth(ctx, "Steve"))
	}},
	PlayersSetMaxHealth: {"/api/players/Steve/maxhealth", `{"maxHealth":30}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Players.SetMaxHealth(ctx, "Steve", 30))
	}},
	PlayersGetSpawnPoint: {"/api/players/Steve/spawnpoint", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Players.GetSpawnPoint(ctx, "Steve"))
	}},

	PluginsGetAllPlugins: {"/api/plugins", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Plugins.GetAllPlugins(ctx))
	}},
	PluginsGetPluginInfo: {"/api/plugins/WorldEdit", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Plugins.GetPluginInfo(ctx, "WorldEdit"))
	}},
	ServerGetServerInfo: {"/api/server", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Server.GetServerInfo(ctx))
	}},

	WhitelistGetWhitelistInfo: {"/api/whitelist", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Whitelist.GetWhitelistInfo(ctx))
	}},
	WhitelistGetWhitelistedPlayers: {"/api/whitelist/players", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Whitelist.GetWhitelistedPlayers(ctx))
	}},
	WhitelistWhitelistPlayer: {"/api/whitelist/players/add", `{"name":"Alex"}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Whitelist.WhitelistPlayer(ctx, "Alex"))
	}},
	WhitelistUnwhitelistPlayer: {"/api/whitelist/players/remove", `{"name":"Alex"}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Whitelist.UnwhitelistPlayer(ctx, "Alex"))
	}},
	WhitelistIsPlayerWhitelisted: {"/api/whitelist/players/Alex", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Whitelist.IsPlayerWhitelisted(ctx, "Alex"))
	}},

	WorldsGetAllWorlds: {"/api/worlds", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.GetAllWorlds(ctx))
	}},
	WorldsGetWorldInfo: {"/api/worlds/world", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.GetWorldInfo(ctx, "world"))
	}},
	WorldsSaveWorld: {"/api/worlds/world/save", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.SaveWorld(ctx, "world"))
	}},
	WorldsGetBlocks: {"/api/worlds/world/blocks", `{"blocks":[{"x":0,"y":64,"z":0},{"x":1,"y":64,"z":0}]}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.GetBlocks(ctx, "world", []GetBlockRequest{{X: 0, Y: 64, Z: 0}, {X: 1, Y: 64, Z: 0}}))
	}},
	WorldsSetBlocks: {"/api/worlds/world/blocks", `{"blocks":[{"block":"stone","x":0,"y":64,"z":0}]}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.SetBlocks(ctx, "world", []SetBlockRequest{{Block: "stone", X: 0, Y: 64, Z: 0}}))
	}},
	WorldsGetBlock: {"/api/worlds/world/blocks/block", `{"x":5,"y":60,"z":-5}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.GetBlock(ctx, "world", 5, 60, -5))
	}},
	WorldsSetBlock: {"/api/worlds/world/blocks/block", `{"block":"dirt","x":5,"y":60,"z":-5}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.SetBlock(ctx, "world", "dirt", 5, 60, -5))
	}},
	WorldsGetDifficulty: {"/api/worlds/world/difficulty", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.GetDifficulty(ctx, "world"))
	}},
	WorldsSetDifficulty: {"/api/worlds/world/difficulty", `{"difficulty":"hard"}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.SetDifficulty(ctx, "world", DifficultyHard))
	}},
	WorldsDropItems: {"/api/worlds/world/items/drop", `{"item":"apple","amount":3,"x":1,"y":2,"z":3}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.DropItems(ctx, "world", "apple", 3, 1, 2, 3))
	}},
	WorldsGetSeed: {"/api/worlds/world/seed", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.GetSeed(ctx, "world"))
	}},
	WorldsGetSpawnPoint: {"/api/worlds/world/spawnpoint", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.GetSpawnPoint(ctx, "world"))
	}},
	WorldsSetSpawnPoint: {"/api/worlds/world/spawnpoint", `{"x":0,"y":70,"z":0}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.SetSpawnPoint(ctx, "world", 0, 70, 0))
	}},
	WorldsGetTime: {"/api/worlds/world/time", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.GetTime(ctx, "world"))
	}},
	WorldsSetTime: {"/api/worlds/world/time", `{"time":6000}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.SetTime(ctx, "world", 6000))
	}},
	WorldsGetWeather: {"/api/worlds/world/weather", "", func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.GetWeather(ctx, "world"))
	}},
	WorldsSetWeather: {"/api/worlds/world/weather", `{"weather":"thunder","duration":1200}`, func(ctx context.Context, c *Client) error {
		return ignore(c.Worlds.SetWeather(ctx, "world", WeatherThunder, 1200))
	}},
}

func TestEveryOperationIsReachable(t *testing.T) {
	all := Endpoints()
	assert.Len(t, facadeCalls, len(all))
	for _, ep := range all {
		_, ok := facadeCalls[ep.Operation]
		assert.True(t, ok, "no facade call for %s", ep.Operation)
	}
}

func TestFacadeRequests(t *testing.T) {
	client, rec := newRecordingClient(t)
	ctx := context.Background()

	for op, c := range facadeCalls {
		t.Run(string(op), func(t *testing.T) {
			ep, ok := Lookup(op)
			require.True(t, ok)

			require.NoError(t, c.fn(ctx, client))
			got := rec.get()
			assert.Equal(t, ep.Method, got.method)
			assert.Equal(t, c.path, got.path)
			if c.body == "" {
				assert.Empty(t, got.body)
			} else {
				assert.JSONEq(t, c.body, got.body)
			}
		})
	}
}

func TestEndpointTable(t *testing.T) {
	all := Endpoints()
	require.NotEmpty(t, all)

	for i, ep := range all {
		if i > 0 {
			assert.Less(t, string(all[i-1].Operation), string(ep.Operation))
		}
		assert.Equal(t, ep.Operation.Group(), ep.Group)
		assert.NotEmpty(t, ep.Operation.Method())
		assert.Contains(t, []string{http.MethodGet, http.MethodPost, http.MethodPatch}, ep.Method)
		assert.NotNil(t, ep.Response, ep.Operation)
		if ep.Method == http.MethodGet {
			assert.Nil(t, ep.Request, "%s is a GET with body", ep.Operation)
		}
		if ep.Method == http.MethodPatch {
			assert.NotNil(t, ep.Request, "%s is a PATCH without body", ep.Operation)
		}
	}

	_, ok := Lookup("players.Fly")
	assert.False(t, ok)
}

func TestEndpointExpand(t *testing.T) {
	ep, ok := Lookup(PlayersSetInventorySlot)
	require.True(t, ok)
	assert.Equal(t, []string{"player", "slot"}, ep.Params())

	path, err := ep.Expand("Steve", "hand")
	require.NoError(t, err)
	assert.Equal(t, "/api/players/Steve/inventory/slots/hand", path)

	path, err = ep.Expand("a/b", "hand")
	require.NoError(t, err)
	assert.Equal(t, "/api/players/a%2Fb/inventory/slots/hand", path)

	_, err = ep.Expand("Steve")
	assert.Error(t, err)

	ping, _ := Lookup(PingPing)
	assert.Empty(t, ping.Params())
	path, err = ping.Expand()
	require.NoError(t, err)
	assert.Equal(t, "/api/ping", path)
}

func TestOperationName(t *testing.T) {
	assert.Equal(t, "players", PlayersGetPlayerInfo.Group())
	assert.Equal(t, "GetPlayerInfo", PlayersGetPlayerInfo.Method())
	assert.Equal(t, "", Operation("nodot").Group())
	assert.Equal(t, "nodot", Operation("nodot").Method())
}

func TestCall(t *testing.T) {
	var got recorded
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = recorded{method: r.Method, path: r.URL.EscapedPath(), body: string(body)}
		if r.URL.Path == "/api/worlds/world/weather" && r.Method == http.MethodGet {
			writeJSON(w, 200, `{"weather":"rain","duration":300}`)
			return
		}
		writeJSON(w, 200, `{"status":200,"code":"OK","message":"done"}`)
	})
	client := New(srv.URL)
	defer client.Close()
	ctx := context.Background()

	result, err := client.Call(ctx, WorldsGetWeather, nil, "world")
	require.NoError(t, err)
	weather, ok := result.(*WeatherDto)
	require.True(t, ok)
	assert.Equal(t, WeatherRain, weather.Weather)
	assert.Equal(t, 300, weather.Duration)

	result, err = client.Call(ctx, PlayersKickPlayer, json.RawMessage(`{"reason":"afk"}`), "Steve")
	require.NoError(t, err)
	assert.Equal(t, "done", result.(*SuccessResponse).Message)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/players/Steve/kick", got.path)
	assert.JSONEq(t, `{"reason":"afk"}`, got.body)

	_, err = client.Call(ctx, "players.Fly", nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = client.Call(ctx, PlayersKickPlayer, json.RawMessage(`{"reasn":"typo"}`), "Steve")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = client.Call(ctx, PingPing, json.RawMessage(`{"x":1}`))
	assert.ErrorIs(t, err, ErrInvalidRequest)

	// missing required field
	_, err = client.Call(ctx, ChatBroadcastAll, nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = client.Call(ctx, PlayersGetPlayerInfo, nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
