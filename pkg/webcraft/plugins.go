package webcraft

import "context"

// PluginsService groups the plugin endpoints
type PluginsService struct{ gw *gateway }

// GetAllPlugins lists the names of all installed plugins
func (s *PluginsService) GetAllPlugins(ctx context.Context) (*PluginNamesDto, error) {
	return invoke[PluginNamesDto](ctx, s.gw, PluginsGetAllPlugins, nil)
}

// GetPluginInfo returns details about one plugin
func (s *PluginsService) GetPluginInfo(ctx context.Context, plugin string) (*PluginDto, error) {
	return invoke[PluginDto](ctx, s.gw, PluginsGetPluginInfo, nil, plugin)
}
