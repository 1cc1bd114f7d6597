package manifest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffResult holds a rendered comparison between two manifest files.
type DiffResult struct {
	// HasChanges indicates if the documents differ.
	HasChanges bool

	// Report is the rendered human-readable diff, empty when identical.
	Report string
}

// Diff compares two manifest files (JSON or YAML) and renders a dyff human
// report. The from file is the baseline.
func Diff(fromPath, toPath string, useColor bool) (*DiffResult, error) {
	from, err := ytbx.LoadFile(fromPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", fromPath, err)
	}
	to, err := ytbx.LoadFile(toPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", toPath, err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return nil, fmt.Errorf("comparing manifests: %w", err)
	}

	if len(report.Diffs) == 0 {
		return &DiffResult{}, nil
	}

	rendered, err := renderReport(report, useColor)
	if err != nil {
		return nil, err
	}
	return &DiffResult{HasChanges: true, Report: rendered}, nil
}

// renderReport renders a dyff report to a string, trimming trailing
// whitespace per line.
func renderReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := reportWriter.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing diff report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
}
