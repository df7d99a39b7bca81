package chipdelta

import (
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// ExpandHome expands a leading ~ to the current user's home directory, so
// that measurement sheets and output paths may be given as ~/ paths.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		path = filepath.Join(usr.HomeDir, (path)[2:])
	}

	return path
}
