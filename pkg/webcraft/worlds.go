package webcraft

import "context"

// WorldsService groups the world endpoints
type WorldsService struct{ gw *gateway }

// GetAllWorlds lists the names of all loaded worlds
func (s *WorldsService) GetAllWorlds(ctx context.Context) (*WorldNamesDto, error) {
	return invoke[WorldNamesDto](ctx, s.gw, WorldsGetAllWorlds, nil)
}

func (s *WorldsService) GetWorldInfo(ctx context.Context, world string) (*WorldDto, error) {
	return invoke[WorldDto](ctx, s.gw, WorldsGetWorldInfo, nil, world)
}

// SaveWorld saves the world to disk
func (s *WorldsService) SaveWorld(ctx context.Context, world string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, WorldsSaveWorld, nil, world)
}

// GetBlocks returns the blocks at the given positions
func (s *WorldsService) GetBlocks(ctx context.Context, world string, blocks []GetBlockRequest) (*BlocksDto, error) {
	return invoke[BlocksDto](ctx, s.gw, WorldsGetBlocks, GetBlocksRequest{Blocks: blocks}, world)
}

// SetBlocks places multiple blocks with one request
func (s *WorldsService) SetBlocks(ctx context.Context, world string, blocks []SetBlockRequest) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, WorldsSetBlocks, SetBlocksRequest{Blocks: blocks}, world)
}

func (s *WorldsService) GetBlock(ctx context.Context, world string, x, y, z int) (*BlockDto, error) {
	return invoke[BlockDto](ctx, s.gw, WorldsGetBlock, GetBlockRequest{X: x, Y: y, Z: z}, world)
}

func (s *WorldsService) SetBlock(ctx context.Context, world string, block string, x, y, z int) (*SuccessResponse, error) {
	req := SetBlockRequest{Block: block, X: x, Y: y, Z: z}
	return invoke[SuccessResponse](ctx, s.gw, WorldsSetBlock, req, world)
}

func (s *WorldsService) GetDifficulty(ctx context.Context, world string) (*DifficultyDto, error) {
	return invoke[DifficultyDto](ctx, s.gw, WorldsGetDifficulty, nil, world)
}

// SetDifficulty accepts the Difficulty constants as well as plain strings
func (s *WorldsService) SetDifficulty(ctx context.Context, world string, difficulty Difficulty) (*SuccessResponse, error) {
	req := SetDifficultyRequest{Difficulty: difficulty}
	return invoke[SuccessResponse](ctx, s.gw, WorldsSetDifficulty, req, world)
}

// DropItems drops amount items at the given position
func (s *WorldsService) DropItems(ctx context.Context, world string, item string, amount int, x, y, z int) (*SuccessResponse, error) {
	req := DropItemsRequest{Item: item, Amount: amount, X: x, Y: y, Z: z}
	return invoke[SuccessResponse](ctx, s.gw, WorldsDropItems, req, world)
}

func (s *WorldsService) GetSeed(ctx context.Context, world string) (*SeedDto, error) {
	return invoke[SeedDto](ctx, s.gw, WorldsGetSeed, nil, world)
}

func (s *WorldsService) GetSpawnPoint(ctx context.Context, world string) (*SpawnPointDto, error) {
	return invoke[SpawnPointDto](ctx, s.gw, WorldsGetSpawnPoint, nil, world)
}

func (s *WorldsService) SetSpawnPoint(ctx context.Context, world string, x, y, z int) (*SuccessResponse, error) {
	req := SetSpawnPointRequest{X: x, Y: y, Z: z}
	return invoke[SuccessResponse](ctx, s.gw, WorldsSetSpawnPoint, req, world)
}

func (s *WorldsService) GetTime(ctx context.Context, world string) (*TimeDto, error) {
	return invoke[TimeDto](ctx, s.gw, WorldsGetTime, nil, world)
}

// SetTime sets the world time in ticks
func (s *WorldsService) SetTime(ctx context.Context, world string, time int64) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, WorldsSetTime, SetTimeRequest{Time: time}, world)
}

func (s *WorldsService) GetWeather(ctx context.Context, world string) (*WeatherDto, error) {
	return invoke[WeatherDto](ctx, s.gw, WorldsGetWeather, nil, world)
}

// SetWeather sets the weather for duration ticks. Accepts the Weather constants
// as well as plain strings
func (s *WorldsService) SetWeather(ctx context.Context, world string, weather Weather, duration int) (*SuccessResponse, error) {
	req := SetWeatherRequest{Weather: weather, Duration: duration}
	return invoke[SuccessResponse](ctx, s.gw, WorldsSetWeather, req, world)
}
