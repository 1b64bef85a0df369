// Package web embebe el frontend estático que sirve el router en "/".
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Static devuelve el árbol con index.html en la raíz.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
