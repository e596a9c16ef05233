// Package models holds the data types passed through the songdl pipeline.
package models

// Track is the metadata recovered from one downloaded filename.
type Track struct {
	Artist     string
	Title      string
	Album      string
	SourcePath string
}
