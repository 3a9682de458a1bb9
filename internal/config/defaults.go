package config

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// header sits at the top of generated config files.
const header = `# roshambo configuration
# first_to: round wins required to take the match (must be >= 1)
# seed: 0 seeds the opponent from entropy; any other value is deterministic
`

// WriteDefault writes the default configuration to path. An existing file
// is left alone unless force is set.
func WriteDefault(fs afero.Fs, path string, force bool) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("failed to check for existing config: %w", err)
	}
	if exists && !force {
		return fmt.Errorf("config file %s already exists: %w", path, os.ErrExist)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := afero.WriteFile(fs, path, append([]byte(header), data...), 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
