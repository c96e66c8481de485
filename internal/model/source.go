// Package model defines the data structures shared by the export engine.
package model

// Path represents a file system path.
type Path string

// DirEntry is one immediate child of a directory, with symlinks resolved.
type DirEntry struct {
	Name      string
	Path      Path
	IsDir     bool
	IsRegular bool
}
