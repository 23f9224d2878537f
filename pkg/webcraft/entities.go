package webcraft

import "context"

// EntitiesService groups the entity endpoints. Entities are addressed by their id.
type EntitiesService struct{ gw *gateway }

func (s *EntitiesService) GetSpawnableMobs(ctx context.Context) (*SpawnableEntitiesDto, error) {
	return invoke[SpawnableEntitiesDto](ctx, s.gw, EntitiesGetSpawnableMobs, nil)
}

// SpawnMob spawns a mob and returns the new entity
func (s *EntitiesService) SpawnMob(ctx context.Context, req SpawnMobRequest) (*EntityDto, error) {
	return invoke[EntityDto](ctx, s.gw, EntitiesSpawnMob, req)
}

func (s *EntitiesService) GetEntity(ctx context.Context, entityID string) (*EntityDto, error) {
	return invoke[EntityDto](ctx, s.gw, EntitiesGetEntity, nil, entityID)
}

func (s *EntitiesService) HealEntity(ctx context.Context, entityID string) (*EntityDto, error) {
	return invoke[EntityDto](ctx, s.gw, EntitiesHealEntity, nil, entityID)
}

func (s *EntitiesService) KillEntity(ctx context.Context, entityID string) (*EntityDto, error) {
	return invoke[EntityDto](ctx, s.gw, EntitiesKillEntity, nil, entityID)
}

func (s *EntitiesService) GetCustomName(ctx context.Context, entityID string) (*CustomNameDto, error) {
	return invoke[CustomNameDto](ctx, s.gw, EntitiesGetCustomName, nil, entityID)
}

func (s *EntitiesService) SetCustomName(ctx context.Context, entityID string, customName string) (*EntityDto, error) {
	return invoke[EntityDto](ctx, s.gw, EntitiesSetCustomName, CustomNameRequest{CustomName: customName}, entityID)
}

func (s *EntitiesService) GetHealth(ctx context.Context, entityID string) (*HealthDto, error) {
	return invoke[HealthDto](ctx, s.gw, EntitiesGetHealth, nil, entityID)
}

func (s *EntitiesService) SetHealth(ctx context.Context, entityID string, health float64) (*EntityDto, error) {
	return invoke[EntityDto](ctx, s.gw, EntitiesSetHealth, HealthRequest{Health: health}, entityID)
}

func (s *EntitiesService) GetMaxHealth(ctx context.Context, entityID string) (*MaxHealthDto, error) {
	return invoke[MaxHealthDto](ctx, s.gw, EntitiesGetMaxHealth, nil, entityID)
}

func (s *EntitiesService) SetMaxHealth(ctx context.Context, entityID string, maxHealth float64) (*EntityDto, error) {
	return invoke[EntityDto](ctx, s.gw, EntitiesSetMaxHealth, MaxHealthRequest{MaxHealth: maxHealth}, entityID)
}
