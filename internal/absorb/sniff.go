package absorb

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
)

// textExtensions gates the content-keyword rule to files worth sniffing.
var textExtensions = map[string]struct{}{
	".md":   {},
	".txt":  {},
	".py":   {},
	".js":   {},
	".ts":   {},
	".html": {},
	".yaml": {},
	".yml":  {},
	".json": {},
}

// readFirstLines reads up to maxLines leading lines (capped at maxBytes) of a
// file and returns them lowercased. The second return is false when the file
// could not be read or the context deadline expired first; callers treat that
// as "rule did not match", never as a failure.
func readFirstLines(ctx context.Context, path string, maxLines int, maxBytes int64) (string, bool) {
	type outcome struct {
		content string
		ok      bool
	}

	if ctx.Err() != nil {
		return "", false
	}

	done := make(chan outcome, 1)
	go func() {
		done <- outcome{content: readLines(path, maxLines, maxBytes)}
	}()

	select {
	case <-ctx.Done():
		return "", false
	case result := <-done:
		if result.content == "" {
			return "", false
		}
		return result.content, true
	}
}

func readLines(path string, maxLines int, maxBytes int64) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	reader := bufio.NewReader(io.LimitReader(file, maxBytes))
	var builder strings.Builder
	for line := 0; line < maxLines; line++ {
		text, err := reader.ReadString('\n')
		builder.WriteString(text)
		if err != nil {
			break
		}
	}
	return strings.ToLower(builder.String())
}
