package cfgflags

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags binds each named flag in fs to the viper key of the same name.
func bindFlags(fs *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("flag %q is not defined", name)
		}
		if err := viper.BindPFlag(name, f); err != nil {
			return err
		}
	}
	return nil
}
