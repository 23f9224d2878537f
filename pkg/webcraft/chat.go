package webcraft

import "context"

// ChatService broadcasts chat messages
type ChatService struct{ gw *gateway }

// BroadcastAll sends a message to all players and operators
func (s *ChatService) BroadcastAll(ctx context.Context, message string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, ChatBroadcastAll, BroadcastRequest{Message: message})
}

// BroadcastOps sends a message to all operators
func (s *ChatService) BroadcastOps(ctx context.Context, message string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, ChatBroadcastOps, BroadcastRequest{Message: message})
}

// BroadcastPlayers sends a message to all players that are not operators
func (s *ChatService) BroadcastPlayers(ctx context.Context, message string) (*SuccessResponse, error) {
	return invoke[SuccessResponse](ctx, s.gw, ChatBroadcastPlayers, BroadcastRequest{Message: message})
}
