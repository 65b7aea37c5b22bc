package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// DefaultDesiredFile is the conventional desired-state document name.
const DefaultDesiredFile = "shop.yaml"

// LoadDesired parses the desired-state configuration document. Unknown
// fields are rejected so a typo never silently drops a section.
func LoadDesired(path string) (*models.Configuration, error) {
	data, err := os.ReadFile(path) // #nosec G304 - user-supplied document path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.New(apperrors.ErrCodeConfigNotFound,
				fmt.Sprintf("configuration file %q not found", path)).
				WithSuggestions("Run 'shopsync init' to scaffold a starter configuration")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigInvalid,
			fmt.Sprintf("failed to read configuration %q", path))
	}

	var cfg models.Configuration
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty document is a valid configuration with no sections.
			return &cfg, nil
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigInvalid,
			fmt.Sprintf("failed to parse configuration %q", path)).
			WithContext("path", path)
	}
	return &cfg, nil
}
