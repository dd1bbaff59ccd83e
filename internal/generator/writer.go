package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
)

// FileExtension is appended to each declared name to form its file name.
const FileExtension = ".java"

// WriteFiles persists one artifact per declared name into outputDir, creating
// the directory if needed. Files are written in sorted name order and each
// successful write is logged.
func WriteFiles(outputDir string, artifacts map[string]string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(outputDir, name+FileExtension)
		if err := os.WriteFile(path, []byte(artifacts[name]), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.WithField("file", path).Info("Generated")
	}
	return nil
}
