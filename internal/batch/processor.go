package batch

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/vidrecall/internal/language"
)

// Entry is one video to process
type Entry struct {
	URL string
	// Language is empty when the line did not name one
	Language language.Code
	Line     int
}

// ReadBatchFile reads video entries from a file.
// Supports formats:
// - URL only: "https://youtu.be/MS5UjNKw_1M" (default language)
// - With language: "https://youtu.be/MS5UjNKw_1M = hi"
// Blank lines and lines starting with '#' are ignored.
func ReadBatchFile(filename string) ([]Entry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := Entry{URL: line, Line: lineNo}
		if idx := languageSeparator(line); idx >= 0 {
			entry.URL = strings.TrimSpace(line[:idx])
			code, err := language.Parse(line[idx+1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNo, err)
			}
			entry.Language = code
		}
		if entry.URL == "" {
			return nil, fmt.Errorf("%s:%d: missing URL", filename, lineNo)
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return entries, nil
}

// languageSeparator finds the '=' that introduces a language. It must start
// the line or follow whitespace, so query strings like ?v= stay intact.
func languageSeparator(line string) int {
	idx := strings.LastIndex(line, "=")
	if idx < 0 {
		return -1
	}
	if idx == 0 || line[idx-1] == ' ' || line[idx-1] == '\t' {
		return idx
	}
	return -1
}
