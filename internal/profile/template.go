package profile

import (
	"fmt"
	"os"
)

// WriteTemplate writes a starter profile store to path, in the idiom
// of this codebase's other named-target config files.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("profile: store already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(storeTemplate), 0o600)
}

const storeTemplate = `[profiles.local]
scheme = "ws"
host = "localhost"
port = 4455
password = ""
`
