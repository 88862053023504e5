package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var assets embed.FS

// subFS returns the embedded directory dir as its own file system root.
func subFS(dir string) fs.FS {
	sub, err := fs.Sub(assets, dir)
	if err != nil {
		// dir is a compile time constant embedded above
		panic(err)
	}

	return sub
}
