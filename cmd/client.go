package cmd

import (
	"github.com/zalando/go-keyring"

	"shopsync/internal/config"
	"shopsync/internal/remote"
	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

const keyringService = "shopsync"

// buildStore assembles the remote store from the app config, preferring a
// keyring-stored token over the (possibly encrypted) config token.
func buildStore() (remote.Store, *models.Config, error) {
	appConfig, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if appConfig.Remote.Endpoint == "" {
		return nil, nil, apperrors.New(apperrors.ErrCodeConfigMissing, "no platform endpoint configured").
			WithSuggestions("Run 'shopsync init' to configure the platform endpoint")
	}

	token, err := lookupToken(appConfig)
	if err != nil {
		return nil, nil, err
	}
	return remote.NewHTTPClient(appConfig.Remote.Endpoint, token), appConfig, nil
}

func lookupToken(appConfig *models.Config) (string, error) {
	if token, err := keyring.Get(keyringService, appConfig.Remote.Endpoint); err == nil && token != "" {
		return token, nil
	}
	if appConfig.Remote.Token != "" {
		return config.DecryptToken(appConfig.Remote.Token)
	}
	return "", apperrors.New(apperrors.ErrCodeAuthenticationFailed, "no API token available").
		WithSuggestions("Run 'shopsync auth login' to store a token")
}
