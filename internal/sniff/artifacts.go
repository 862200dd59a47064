package sniff

import (
	"strings"

	"tabpaste/internal/tabular"
)

// artifactMarkers are substrings that indicate a GitHub Actions artifacts
// listing. The line shape alone is too loose a signal to trust.
var artifactMarkers = []string{"wheels-", "artifact-", ".zip", ".tar.gz"}

// ParseGitHubArtifacts recognizes the plain-text clipboard shape produced
// by copying a GitHub Actions artifacts listing: a tab-separated header
// line holding Name and Size, then pairs of an artifact-name line followed
// by a tab-led detail line. Records pad or truncate to the header width.
// ok is false when the text has any other shape.
func ParseGitHubArtifacts(text string) (tabular.Rows, bool) {
	if !strings.Contains(text, "Name") || !strings.Contains(text, "\tSize") {
		return tabular.Rows{}, false
	}
	marked := false
	for _, m := range artifactMarkers {
		if strings.Contains(text, m) {
			marked = true
			break
		}
	}
	if !marked {
		return tabular.Rows{}, false
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		return tabular.Rows{}, false
	}

	var header []string
	for _, h := range strings.Split(lines[0], "\t") {
		if h = strings.TrimSpace(h); h != "" {
			header = append(header, h)
		}
	}
	if len(header) < 2 || header[0] != "Name" {
		return tabular.Rows{}, false
	}

	var (
		records [][]string
		name    string
	)
	for _, raw := range lines[1:] {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		// Detail lines keep their leading tab; the name they belong to came
		// on the line before.
		if strings.HasPrefix(raw, "\t") {
			if name == "" {
				continue
			}
			rec := []string{name}
			for _, v := range strings.Split(raw, "\t") {
				if v = strings.TrimSpace(v); v != "" {
					rec = append(rec, v)
				}
			}
			records = append(records, fitWidth(rec, len(header)))
			name = ""
			continue
		}
		name = strings.TrimSpace(raw)
	}
	if len(records) == 0 {
		return tabular.Rows{}, false
	}

	return tabular.Rows{Header: header, Records: records, HasHeader: true}, true
}

// fitWidth pads rec with empty cells or truncates it so len(rec) == width.
func fitWidth(rec []string, width int) []string {
	for len(rec) < width {
		rec = append(rec, "")
	}
	return rec[:width]
}
