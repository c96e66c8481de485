package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ctxport.dev/pkg/ctxport/internal/adapter"
	m "ctxport.dev/pkg/ctxport/internal/model"
)

// traversal walks one source tree and streams admitted files into out.
type traversal struct {
	fsAdapter       adapter.ContextFSAdapter
	filter          m.FilterSpec
	includeMetadata bool
	extension       string
	parallel        int
	root            m.Path
	skip            m.Path
	out             io.Writer
	report          *m.ExportReport
}

// candidate is a classified child of the directory being visited.
type candidate struct {
	entry    m.DirEntry
	kind     m.ItemKind
	ignored  bool
	tags     []string
	priority int
	reason   m.RejectReason
}

func (t *traversal) walk(ctx context.Context, dir m.Path, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := t.fsAdapter.ListDir(dir)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}

	candidates, err := t.classify(ctx, entries)
	if err != nil {
		return err
	}

	var dirs []candidate

	for _, c := range candidates {
		if c.ignored {
			continue
		}

		if c.reason != "" {
			t.reject(c)
			continue
		}

		if c.kind == m.KindDir {
			dirs = append(dirs, c)
			continue
		}

		if err := t.appendFile(ctx, c, depth); err != nil {
			return err
		}
	}

	sort.SliceStable(dirs, func(i, j int) bool {
		return dirs[i].priority < dirs[j].priority
	})

	for _, d := range dirs {
		t.report.Entries = append(t.report.Entries, m.ExportEntry{
			Path:     t.relative(d.entry.Path),
			Kind:     m.KindDir,
			Depth:    depth,
			Tags:     d.tags,
			Priority: d.priority,
		})

		slog.Debug("descending into context folder", "path", d.entry.Path, "priority", d.priority)

		if err := t.walk(ctx, d.entry.Path, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// classify reads the folder config or file metadata of every entry. Reads may
// run concurrently; results keep the enumeration order.
func (t *traversal) classify(ctx context.Context, entries []m.DirEntry) ([]candidate, error) {
	candidates := make([]candidate, len(entries))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(t.parallel)

	for i, entry := range entries {
		i, entry := i, entry

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			c, err := t.classifyEntry(entry)
			if err != nil {
				return err
			}

			candidates[i] = c

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (t *traversal) classifyEntry(entry m.DirEntry) (candidate, error) {
	switch {
	case entry.IsRegular:
		if !strings.HasSuffix(entry.Name, t.extension) || entry.Path == t.skip {
			return candidate{entry: entry, ignored: true}, nil
		}

		meta, err := t.fsAdapter.ReadFileMetadata(entry.Path)
		if err != nil {
			return candidate{}, fmt.Errorf("read metadata: %w", err)
		}

		return candidate{
			entry:  entry,
			kind:   m.KindFile,
			tags:   meta.Tags,
			reason: Admit(t.filter, m.KindFile, meta.Tags),
		}, nil

	case entry.IsDir:
		cfg, ok, err := t.fsAdapter.ReadFolderConfig(entry.Path)
		if err != nil {
			return candidate{}, fmt.Errorf("read folder config: %w", err)
		}

		if !ok {
			return candidate{entry: entry, kind: m.KindDir, reason: m.ReasonNotContextFolder}, nil
		}

		return candidate{
			entry:    entry,
			kind:     m.KindDir,
			tags:     cfg.Tags,
			priority: cfg.Priority,
			reason:   Admit(t.filter, m.KindDir, cfg.Tags),
		}, nil
	}

	return candidate{entry: entry, ignored: true}, nil
}

func (t *traversal) appendFile(ctx context.Context, c candidate, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := t.fsAdapter.ReadFile(c.entry.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.entry.Path, err)
	}

	stripped := false

	if !t.includeMetadata {
		content, stripped, err = StripMetadata(content)
		if err != nil {
			return fmt.Errorf("%s: %w", c.entry.Path, err)
		}
	}

	if _, err := t.out.Write(content); err != nil {
		return fmt.Errorf("write %s: %w", c.entry.Path, err)
	}

	if _, err := io.WriteString(t.out, "\n"); err != nil {
		return fmt.Errorf("write %s: %w", c.entry.Path, err)
	}

	t.report.Entries = append(t.report.Entries, m.ExportEntry{
		Path:     t.relative(c.entry.Path),
		Kind:     m.KindFile,
		Depth:    depth,
		Tags:     c.tags,
		Stripped: stripped,
		Bytes:    len(content) + 1,
	})

	slog.Debug("exported file", "path", c.entry.Path, "bytes", len(content)+1, "stripped", stripped)

	return nil
}

func (t *traversal) reject(c candidate) {
	t.report.Rejections = append(t.report.Rejections, m.Rejection{
		Path:   t.relative(c.entry.Path),
		Kind:   c.kind,
		Reason: c.reason,
		Tags:   c.tags,
	})

	slog.Debug("skipped item", "path", c.entry.Path, "kind", c.kind, "reason", c.reason)
}

func (t *traversal) relative(path m.Path) m.Path {
	rel, err := t.fsAdapter.RelPath(t.root, path)
	if err != nil {
		return path
	}

	return rel
}
