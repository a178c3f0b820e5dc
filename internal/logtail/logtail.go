package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

const chunkSize = 32 * 1024

// Read returns the last n lines of the file at path, oldest first.
// A missing file yields no lines. n <= 0 returns the whole file.
func Read(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}

	data, err := readTail(file, info.Size(), n)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lastLines(data, n), nil
}

// readTail reads chunks backwards from the end until it holds more than n
// newlines or reaches the start of the file.
func readTail(r io.ReaderAt, size int64, n int) ([]byte, error) {
	var buf []byte
	offset := size
	for offset > 0 {
		step := int64(chunkSize)
		if offset < step {
			step = offset
		}
		offset -= step

		chunk := make([]byte, step)
		if _, err := r.ReadAt(chunk, offset); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		buf = append(chunk, buf...)

		if n > 0 && bytes.Count(buf, []byte{'\n'}) > n {
			break
		}
	}
	return buf, nil
}

func lastLines(data []byte, n int) []string {
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

var levelPattern = regexp.MustCompile(`(?:level=|"level":")(DEBUG|INFO|WARN|ERROR)`)

// LineLevel extracts the slog level recorded in a text or JSON log line.
func LineLevel(line string) (slog.Level, bool) {
	m := levelPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(m[1])); err != nil {
		return 0, false
	}
	return level, true
}

// AtLeast keeps lines whose level is min or above. Lines without a level
// follow the last leveled line, so multi-line messages stay together.
func AtLeast(lines []string, min slog.Level) []string {
	out := make([]string, 0, len(lines))
	keep := true
	for _, line := range lines {
		if level, ok := LineLevel(line); ok {
			keep = level >= min
		}
		if keep {
			out = append(out, line)
		}
	}
	return out
}
