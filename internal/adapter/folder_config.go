package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

// ReadFolderConfig reads the context folder configuration of dir.
//
// A missing .context.ini is not an error. A present file without the section
// or without a numeric priority is ErrMalformedFolderConfig, since the
// traversal cannot decide whether to descend without a priority.
func (a *LocalContextFSAdapter) ReadFolderConfig(dir m.Path) (m.ContextFolderConfig, bool, error) {
	configPath := filepath.Join(string(dir), m.FolderConfigName)

	info, err := os.Stat(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.ContextFolderConfig{}, false, nil
		}

		return m.ContextFolderConfig{}, false, fmt.Errorf("stat %s: %w", configPath, err)
	}

	if !info.Mode().IsRegular() {
		return m.ContextFolderConfig{}, false, nil
	}

	file, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, configPath)
	if err != nil {
		return m.ContextFolderConfig{}, false, fmt.Errorf("%w: %s: %w", m.ErrMalformedFolderConfig, configPath, err)
	}

	section, err := file.GetSection(m.FolderConfigSection)
	if err != nil {
		return m.ContextFolderConfig{}, false, fmt.Errorf("%w: %s: missing [%s] section",
			m.ErrMalformedFolderConfig, configPath, m.FolderConfigSection)
	}

	priorityKey, err := section.GetKey(m.FolderPriorityKey)
	if err != nil {
		return m.ContextFolderConfig{}, false, fmt.Errorf("%w: %s: missing %q",
			m.ErrMalformedFolderConfig, configPath, m.FolderPriorityKey)
	}

	priority, err := strconv.Atoi(strings.TrimSpace(priorityKey.String()))
	if err != nil {
		return m.ContextFolderConfig{}, false, fmt.Errorf("%w: %s: priority %q is not an integer",
			m.ErrMalformedFolderConfig, configPath, priorityKey.String())
	}

	tags := []string{}
	if section.HasKey(m.FolderTagsKey) {
		tags = m.SplitTags(section.Key(m.FolderTagsKey).String())
	}

	return m.ContextFolderConfig{Priority: priority, Tags: tags}, true, nil
}

// WriteFolderConfig turns dir into a context folder.
func (a *LocalContextFSAdapter) WriteFolderConfig(dir m.Path, cfg m.ContextFolderConfig) error {
	info, err := os.Stat(string(dir))
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, m.ErrNotDirectory)
	}

	configPath := filepath.Join(string(dir), m.FolderConfigName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%w: %s", m.ErrFolderConfigExists, configPath)
	}

	file := ini.Empty()

	section, err := file.NewSection(m.FolderConfigSection)
	if err != nil {
		return fmt.Errorf("create section: %w", err)
	}

	if _, err := section.NewKey(m.FolderPriorityKey, strconv.Itoa(cfg.Priority)); err != nil {
		return fmt.Errorf("set priority: %w", err)
	}

	if _, err := section.NewKey(m.FolderTagsKey, strings.Join(cfg.Tags, m.TagDelimiter+" ")); err != nil {
		return fmt.Errorf("set tags: %w", err)
	}

	if err := file.SaveTo(configPath); err != nil {
		return fmt.Errorf("write %s: %w", configPath, err)
	}

	return nil
}
