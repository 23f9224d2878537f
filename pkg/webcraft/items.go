package webcraft

import "context"

// ItemsService lists the known blocks and items
type ItemsService struct{ gw *gateway }

func (s *ItemsService) GetAllBlocks(ctx context.Context) (*BlockNamesDto, error) {
	return invoke[BlockNamesDto](ctx, s.gw, ItemsGetAllBlocks, nil)
}

func (s *ItemsService) GetAllItems(ctx context.Context) (*ItemNamesDto, error) {
	return invoke[ItemNamesDto](ctx, s.gw, ItemsGetAllItems, nil)
}
