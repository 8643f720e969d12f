// Package export writes split tables, lap sheets and race results to CSV,
// JSON or YAML files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Format is an output file format.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrEmpty is returned when a sheet has no rows.
var ErrEmpty = errors.New("nothing to export")

// ParseFormat maps a name such as "csv" or "yml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown export format %q", name)
}

// Sheet is a table ready for export. CSV output uses Header and Rows, JSON
// and YAML encode Data.
type Sheet struct {
	Title  string
	Header []string
	Rows   [][]string
	Data   any
}

// Write encodes the sheet to w.
func Write(w io.Writer, format Format, sheet Sheet) error {
	if len(sheet.Rows) == 0 {
		return ErrEmpty
	}

	switch format {
	case CSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(sheet.Header); err != nil {
			return err
		}
		if err := cw.WriteAll(sheet.Rows); err != nil {
			return err
		}
		return cw.Error()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sheet.Data)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sheet.Data); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown export format %q", format)
}

// Service writes sheets into a directory.
type Service struct {
	dir    string
	now    func() time.Time
	logger zerolog.Logger
}

// NewService creates an export service writing into dir.
func NewService(dir string, logger zerolog.Logger) *Service {
	if dir == "" {
		dir = "."
	}
	return &Service{
		dir:    dir,
		now:    time.Now,
		logger: logger.With().Str("component", "export").Logger(),
	}
}

// Export writes the sheet to a new timestamped file and returns its path.
func (s *Service) Export(sheet Sheet, format Format) (string, error) {
	if len(sheet.Rows) == 0 {
		return "", ErrEmpty
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	base := fmt.Sprintf("%s_%s", slug(sheet.Title), s.now().Format("20060102-150405"))
	file, path, err := s.create(base, format)
	if err != nil {
		return "", err
	}

	if err := Write(file, format, sheet); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", format, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	s.logger.Info().Str("path", path).Int("rows", len(sheet.Rows)).Msg("exported")
	return path, nil
}

// maxAttempts bounds the numbered names tried when exports collide within
// the same second.
const maxAttempts = 100

// create opens a new file named base.ext, or base_2.ext and so on when an
// earlier export already took the name. Existing files are never replaced.
func (s *Service) create(base string, format Format) (*os.File, string, error) {
	for i := 1; i <= maxAttempts; i++ {
		name := base
		if i > 1 {
			name = fmt.Sprintf("%s_%d", base, i)
		}
		path := filepath.Join(s.dir, name+"."+string(format))

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return file, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("failed to create export file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("failed to create export file: %s.%s and %d numbered variants exist", base, format, maxAttempts-1)
}

func slug(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	if title == "" {
		return "export"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, title)
}
