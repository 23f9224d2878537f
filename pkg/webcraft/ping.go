package webcraft

import "context"

// PingService checks if the server is alive
type PingService struct{ gw *gateway }

// Ping sends a ping request
func (s *PingService) Ping(ctx context.Context) (*PingDto, error) {
	return invoke[PingDto](ctx, s.gw, PingPing, nil)
}
