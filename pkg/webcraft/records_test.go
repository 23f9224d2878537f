package webcraft

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalFieldsAreOmitted(t *testing.T) {
	body, err := json.Marshal(BanPlayerRequest{Player: "Steve"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"player":"Steve"}`, string(body))

	body, err = json.Marshal(BanIPRequest{IP: "1.2.3.4", Reason: "griefing", Source: "console"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ip":"1.2.3.4","reason":"griefing","source":"console"}`, string(body))

	body, err = json.Marshal(KickRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(body))
}

func TestEnumAndRawStringEncodeTheSame(t *testing.T) {
	typed, err := json.Marshal(SetWeatherRequest{Weather: WeatherRain, Duration: 100})
	require.NoError(t, err)
	raw, err := json.Marshal(SetWeatherRequest{Weather: Weather("rain"), Duration: 100})
	require.NoError(t, err)
	assert.Equal(t, string(typed), string(raw))
	assert.JSONEq(t, `{"weather":"rain","duration":100}`, string(typed))

	typed, err = json.Marshal(SetDifficultyRequest{Difficulty: DifficultyPeaceful})
	require.NoError(t, err)
	assert.JSONEq(t, `{"difficulty":"peaceful"}`, string(typed))
}

func TestLocationWithoutWorld(t *testing.T) {
	loc := LocationDto{}
	require.NoError(t, json.Unmarshal([]byte(`{"x":1.5,"y":64,"z":-10}`), &loc))
	assert.Nil(t, loc.World)
	assert.Equal(t, 1.5, loc.X)
	assert.Equal(t, -10.0, loc.Z)

	require.NoError(t, json.Unmarshal([]byte(`{"world":"world_the_end","x":0,"y":0,"z":0}`), &loc))
	require.NotNil(t, loc.World)
	assert.Equal(t, "world_the_end", *loc.World)
}

func TestEntityWithoutCustomName(t *testing.T) {
	entity := EntityDto{}
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"uniqueId":"abc","entityType":"ZOMBIE","isDead":false,"health":20}`), &entity))
	assert.Nil(t, entity.CustomName)
	assert.Equal(t, int64(7), entity.ID)
	assert.Equal(t, "ZOMBIE", entity.EntityType)
}

func TestTimestamps(t *testing.T) {
	ban := BannedPlayerDto{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Steve","expires":1700000000000}`), &ban))
	assert.True(t, ban.ExpiresAt().Equal(time.Unix(1700000000, 0)))

	player := PlayerDto{FirstLogin: 1600000000000, LastLogin: 1600000001500}
	assert.Equal(t, 1500*time.Millisecond, player.LastLoginAt().Sub(player.FirstLoginAt()))
}

func TestParseEnums(t *testing.T) {
	d, err := ParseDifficulty(" Hard ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, d)

	w, err := ParseWeather("THUNDER")
	require.NoError(t, err)
	assert.Equal(t, WeatherThunder, w)

	s, err := ParseSlot("off-hand")
	require.NoError(t, err)
	assert.Equal(t, SlotOffHand, s)
	assert.Equal(t, "off_hand", s.String())

	_, err = ParseWeather("snow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear, rain, thunder")
}
