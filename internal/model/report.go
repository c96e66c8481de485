package model

import "time"

// ExportJob describes one export run.
type ExportJob struct {
	Source          Path
	Destination     Path
	Filter          []string
	IncludeMetadata bool
	Extension       string
	Parallel        int
}

// RejectReason explains why a candidate was left out of the export.
type RejectReason string

const (
	// ReasonBlacklisted means one of the item's tags is blacklisted for its kind.
	ReasonBlacklisted RejectReason = "blacklisted"
	// ReasonNotWhitelisted means the whitelist for the item's kind is set and
	// none of its tags are on it.
	ReasonNotWhitelisted RejectReason = "not-whitelisted"
	// ReasonNotContextFolder means the directory has no .context.ini.
	ReasonNotContextFolder RejectReason = "not-context-folder"
)

// ExportEntry is one admitted item, in output order.
type ExportEntry struct {
	Path     Path     `yaml:"path"`
	Kind     ItemKind `yaml:"kind"`
	Depth    int      `yaml:"depth"`
	Tags     []string `yaml:"tags,omitempty"`
	Priority int      `yaml:"priority,omitempty"`
	Stripped bool     `yaml:"stripped,omitempty"`
	Bytes    int      `yaml:"bytes,omitempty"`
}

// Rejection is one candidate that was left out.
type Rejection struct {
	Path   Path         `yaml:"path"`
	Kind   ItemKind     `yaml:"kind"`
	Reason RejectReason `yaml:"reason"`
	Tags   []string     `yaml:"tags,omitempty"`
}

// ExportReport records what an export (or a dry run) visited.
type ExportReport struct {
	RunID           string        `yaml:"run_id"`
	Source          Path          `yaml:"source"`
	Destination     Path          `yaml:"destination"`
	Filter          string        `yaml:"filter"`
	IncludeMetadata bool          `yaml:"include_metadata"`
	DryRun          bool          `yaml:"dry_run"`
	StartedAt       time.Time     `yaml:"started_at"`
	Duration        time.Duration `yaml:"duration"`
	Entries         []ExportEntry `yaml:"entries"`
	Rejections      []Rejection   `yaml:"rejections,omitempty"`
}

// FileCount returns the number of exported files.
func (r ExportReport) FileCount() int {
	return r.count(KindFile)
}

// DirCount returns the number of context folders descended into.
func (r ExportReport) DirCount() int {
	return r.count(KindDir)
}

// TotalBytes returns the size of the written output.
func (r ExportReport) TotalBytes() int {
	total := 0
	for _, entry := range r.Entries {
		total += entry.Bytes
	}

	return total
}

func (r ExportReport) count(kind ItemKind) int {
	n := 0

	for _, entry := range r.Entries {
		if entry.Kind == kind {
			n++
		}
	}

	return n
}
