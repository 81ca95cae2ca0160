package migrations

import (
	"embed"
	"io/fs"
)

// The schema is maintained per driver: sqlite uses INTEGER PRIMARY KEY
// AUTOINCREMENT, postgres uses identity columns. Both sets must carry
// the same file names so a database can move between drivers without
// re-running applied versions.
//
//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// GetFS returns the embedded migrations, one subdirectory per driver
func GetFS() fs.FS {
	return files
}
