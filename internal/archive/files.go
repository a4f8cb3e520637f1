package archive

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-secret-share/models"
)

// LoadFiles reads every path into a FileInput, keeping the given order.
// Blank paths are skipped.
func LoadFiles(paths []string) ([]models.FileInput, error) {
	files := make([]models.FileInput, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read attachment %s: %w", p, err)
		}
		files = append(files, models.FileInput{Name: p, Content: content})
	}
	return files, nil
}

// SplitPaths splits a comma separated list of paths as typed in a form.
func SplitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
