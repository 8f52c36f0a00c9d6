package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportReport writes a report as pretty-printed JSON into the workspace
// exports directory, named after the source and the analysis time so
// repeated runs never clobber each other. Returns the written path.
func ExportReport(base, source string, report any) (string, error) {
	name := fmt.Sprintf("%s-%s.json", sourceSlug(source), time.Now().Format("20060102-150405"))
	path := filepath.Join(base, "exports", name)

	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// sourceSlug derives a short stable file-name prefix from the source label
// (a path, "stdin", or anything else the caller used).
func sourceSlug(source string) string {
	base := filepath.Base(strings.TrimSpace(source))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == '-' || r == '_':
			return r
		default:
			return -1
		}
	}, base)
	if cleaned != "" {
		return cleaned
	}
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])[:12]
}
