package model

import "strings"

const (
	// FolderConfigName is the file that turns a directory into a context folder.
	FolderConfigName = ".context.ini"
	// FolderConfigSection is the INI section holding the folder settings.
	FolderConfigSection = "Context Folder Configuration"
	// FolderPriorityKey orders sibling context folders, lowest first.
	FolderPriorityKey = "priority"
	// FolderTagsKey holds the comma-separated folder tags.
	FolderTagsKey = "tags"

	// MetadataStartMarker opens the inline metadata block of a text file.
	MetadataStartMarker = "#METADATA_START"
	// MetadataEndMarker closes the inline metadata block.
	MetadataEndMarker = "#METADATA_END"
	// MetadataTagKey names the tag line inside the metadata block.
	MetadataTagKey = "%Tag"
	// MetadataNoteKey names the free-form note line inside the metadata block.
	MetadataNoteKey = "%Note"

	// TagDelimiter separates tags in both configuration formats.
	TagDelimiter = ","

	// DefaultTextExtension selects which files are exported.
	DefaultTextExtension = ".txt"
)

// ContextFolderConfig is the content of a directory's .context.ini.
type ContextFolderConfig struct {
	Priority int      `yaml:"priority"`
	Tags     []string `yaml:"tags"`
}

// FileMetadata is the tag information declared in a file's metadata block.
// Tags is never nil; it is empty when Present is false.
type FileMetadata struct {
	Present bool
	Tags    []string
}

// SplitTags splits a comma-separated tag list, trimming each tag and dropping
// empty ones. The result is never nil.
func SplitTags(value string) []string {
	parts := strings.Split(value, TagDelimiter)
	tags := make([]string, 0, len(parts))

	for _, part := range parts {
		tag := strings.Trim(part, " \t\r\n")
		if tag == "" {
			continue
		}

		tags = append(tags, tag)
	}

	return tags
}
