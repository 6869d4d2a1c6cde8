package layout

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed resources/views/* resources/icons/*
var embedded embed.FS

// EmbeddedFS returns the bundled view resources. Pass it to LoadFS to use the
// default layouts.
func EmbeddedFS() fs.FS {
	return mustSub("resources/views")
}

// EmbeddedIcons returns the bundled SVG icons.
func EmbeddedIcons() fs.FS {
	return mustSub("resources/icons")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(embedded, dir)
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return sub
}

var (
	defaultsOnce  sync.Once
	defaultStore  *Store
	defaultIcons  *IconSet
	defaultsError error
)

func loadDefaults() {
	defaultsOnce.Do(func() {
		defaultStore, defaultsError = LoadFS(EmbeddedFS())
		if defaultsError != nil {
			return
		}
		defaultIcons, defaultsError = LoadIcons(EmbeddedIcons())
	})
	if defaultsError != nil {
		panic(defaultsError)
	}
}

// Default returns the store built from the embedded resources.
func Default() *Store {
	loadDefaults()
	return defaultStore
}

// DefaultIcons returns the icon set built from the embedded icons.
func DefaultIcons() *IconSet {
	loadDefaults()
	return defaultIcons
}
