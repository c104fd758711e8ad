// Package web provides the front-end bundle served for every non-API route.
package web

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed public
var embedded embed.FS

// Source names where Assets found the bundle.
const (
	SourceDir      = "dir"
	SourceEmbedded = "embedded"
)

// Assets returns the bundle in dir when it exists, otherwise the placeholder
// bundle compiled into the binary.
func Assets(dir string) (fs.FS, string) {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir), SourceDir
		}
	}
	return Embedded(), SourceEmbedded
}

// Embedded is the compiled-in placeholder bundle.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
