package model

import "errors"

var (
	// ErrNotDirectory is returned when the export source is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrMalformedFolderConfig is returned for a .context.ini without a usable priority.
	ErrMalformedFolderConfig = errors.New("malformed context folder configuration")
	// ErrMalformedMetadata is returned for a metadata block without an end marker.
	ErrMalformedMetadata = errors.New("malformed metadata block")
	// ErrDestinationLocked is returned when another export holds the destination.
	ErrDestinationLocked = errors.New("destination is locked by another export")
	// ErrFolderConfigExists is returned when creating a context folder that already has a config.
	ErrFolderConfigExists = errors.New("context folder configuration already exists")
)
