package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/errsig/errbench/internal/models"
)

// WriteArtifacts saves the report as a timestamp-named JSON record and a
// plain-text table under dir, returning both paths. All measurement is
// finished by the time this runs, so the two writes go out concurrently.
func WriteArtifacts(dir string, report *models.BenchmarkReport) (jsonPath, textPath string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("reporting: creating output dir %s: %w", dir, err)
	}

	stamp := report.Timestamp.Format("20060102_150405")
	jsonPath = filepath.Join(dir, fmt.Sprintf("errbench_%s.json", stamp))
	textPath = filepath.Join(dir, fmt.Sprintf("errbench_%s.txt", stamp))

	var g errgroup.Group
	g.Go(func() error {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("reporting: encoding report: %w", err)
		}
		if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			return fmt.Errorf("reporting: writing %s: %w", jsonPath, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := os.WriteFile(textPath, []byte(FormatTable(report)), 0644); err != nil {
			return fmt.Errorf("reporting: writing %s: %w", textPath, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return jsonPath, textPath, nil
}

// LoadReport reads a previously saved JSON report.
func LoadReport(path string) (*models.BenchmarkReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reporting: reading %s: %w", path, err)
	}
	var report models.BenchmarkReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("reporting: decoding %s: %w", path, err)
	}
	return &report, nil
}
