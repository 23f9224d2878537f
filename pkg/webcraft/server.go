package webcraft

import "context"

// ServerService returns information about the Minecraft server
type ServerService struct{ gw *gateway }

func (s *ServerService) GetServerInfo(ctx context.Context) (*ServerDto, error) {
	return invoke[ServerDto](ctx, s.gw, ServerGetServerInfo, nil)
}
