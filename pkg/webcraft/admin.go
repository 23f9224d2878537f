package webcraft

import "context"

// AdminService groups the operator endpoints
type AdminService struct{ gw *gateway }

// GetAdmins lists all server operators
func (s *AdminService) GetAdmins(ctx context.Context) (*AdminsDto, error) {
	return invoke[AdminsDto](ctx, s.gw, AdminGetAdmins, nil)
}

// IsPlayerAdmin checks if a player is an operator
func (s *AdminService) IsPlayerAdmin(ctx context.Context, player string) (*IsAdminDto, error) {
	return invoke[IsAdminDto](ctx, s.gw, AdminIsPlayerAdmin, nil, player)
}
