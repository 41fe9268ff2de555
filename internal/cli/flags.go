package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/chartkit/internal/colour"
)

// addLevelFlag registers --level/-l on fs. The configured level applies when
// the flag is not set.
func addLevelFlag(fs *pflag.FlagSet) {
	fs.StringP("level", "l", string(colour.LevelAA), "WCAG level (AA, AAA)")
}

// addBackgroundFlag registers --background/-b on fs.
func addBackgroundFlag(fs *pflag.FlagSet) {
	fs.StringP("background", "b", "", "background colour (default: configured background)")
}

// flagChanged reports whether the named flag exists on fs and was set.
func flagChanged(fs *pflag.FlagSet, name string) (*pflag.Flag, bool) {
	f := fs.Lookup(name)
	return f, f != nil && f.Changed
}
