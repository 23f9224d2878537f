package commands

import (
	"errors"
	"fmt"

	"github.com/minepkg/webcraft/pkg/webcraft"
)

// FromAPIError turns errors of the webcraft client into a CliError with suggestions.
// Other errors are returned unchanged.
func FromAPIError(err error) error {
	var apiErr *webcraft.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	cliErr := &CliError{Text: apiErr.Error(), Err: err}
	switch {
	case errors.Is(err, webcraft.ErrUnauthorized):
		cliErr.Code = "unauthorized"
		cliErr.Suggestions = []string{
			"Run `webcraft login` to get a new token",
			"Check that your account is allowed to use this endpoint",
		}
	case errors.Is(err, webcraft.ErrNotFound):
		cliErr.Code = "not_found"
		cliErr.Suggestions = []string{"Check the spelling of names (player and world names are case sensitive)"}
	case errors.Is(err, webcraft.ErrTransport):
		cliErr.Code = "unreachable"
		cliErr.Help = "The server did not answer."
		cliErr.Suggestions = []string{
			"Check that the server is running and the WebCraftAPI plugin is enabled",
			"Check the server URL with `webcraft config get server`",
		}
	case errors.Is(err, webcraft.ErrInvalidRequest):
		cliErr.Code = "invalid_request"
		cliErr.Suggestions = []string{"Use `webcraft endpoints` to see the expected request fields"}
	case errors.Is(err, webcraft.ErrMalformedResponse):
		cliErr.Code = "malformed_response"
		cliErr.Help = "The server sent a response this client does not understand."
		cliErr.Suggestions = []string{"Check that the WebCraftAPI plugin version is supported with `webcraft info`"}
	case errors.Is(err, webcraft.ErrIncompatibleVersion):
		cliErr.Code = "incompatible_version"
		cliErr.Suggestions = []string{"Update the WebCraftAPI plugin on the server"}
	case apiErr.StatusCode >= 500:
		cliErr.Code = fmt.Sprintf("server_error_%d", apiErr.StatusCode)
		cliErr.Help = "The server failed to handle the request. Check the server log."
	}
	return cliErr
}
