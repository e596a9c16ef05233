package cfg

import (
	"fmt"

	"songdl/internal/validation"

	"github.com/spf13/viper"
)

// loadConfigFile loads in the preset configuration file.
func loadConfigFile(file string) error {
	if _, err := validation.ValidateFile(file, false); err != nil {
		return fmt.Errorf("failed check for config file path: %w", err)
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed loading config file %q: %w", file, err)
	}
	return nil
}
