// Package loader reads analysis inputs from local files or URLs.
package loader

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/fetch"
)

// maxInputBytes bounds how much document text we accept from any source.
// Real resumes and postings are a few KB; anything near this limit is junk.
const maxInputBytes = 1 << 20

// File reads a plain-text document from disk.
func File(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, expected a text file", path)
	}
	if info.Size() > maxInputBytes {
		return "", fmt.Errorf("%s is too large (%d bytes, limit %d)", path, info.Size(), maxInputBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s is empty", path)
	}
	return text, nil
}

// JobURL fetches a job posting from a URL and extracts its text.
func JobURL(ctx context.Context, urlStr string) (string, error) {
	text, err := fetch.JobText(ctx, urlStr, nil)
	if err != nil {
		return "", err
	}
	if len(text) > maxInputBytes {
		text = text[:maxInputBytes]
	}
	return text, nil
}

// Job loads the job description from whichever source is set. Exactly one of
// path and urlStr must be non-empty.
func Job(ctx context.Context, path, urlStr string) (string, error) {
	switch {
	case path != "" && urlStr != "":
		return "", fmt.Errorf("job file and job URL are mutually exclusive")
	case path != "":
		return File(path)
	case urlStr != "":
		return JobURL(ctx, urlStr)
	default:
		return "", fmt.Errorf("no job source: provide a file path or a URL")
	}
}
