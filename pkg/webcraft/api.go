package webcraft

import "context"

// APIService returns information about the API plugin
type APIService struct{ gw *gateway }

// GetAPIInfo returns name, version and authors of the API plugin
func (s *APIService) GetAPIInfo(ctx context.Context) (*APIDto, error) {
	return invoke[APIDto](ctx, s.gw, APIGetAPIInfo, nil)
}
