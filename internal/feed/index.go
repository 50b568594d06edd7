package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/ziadkadry99/bilingo/internal/content"
)

// MaxIndexEntries caps posts/index.json.
const MaxIndexEntries = 200

// MergeIndex puts fresh entries ahead of current ones, keeps the first entry
// for each path and caps the result at limit entries.
func MergeIndex(current, fresh []content.Post, limit int) []content.Post {
	seen := make(map[string]bool, len(current)+len(fresh))
	merged := make([]content.Post, 0, len(current)+len(fresh))
	for _, list := range [][]content.Post{fresh, current} {
		for _, p := range list {
			if seen[p.Path] {
				continue
			}
			seen[p.Path] = true
			merged = append(merged, p)
		}
	}
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// readIndex loads an existing index. A missing or unreadable index starts
// a new one.
func readIndex(path string) ([]content.Post, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var posts []content.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, nil
	}
	return posts, nil
}

// writeIndex writes the index as indented JSON, leaving non-ASCII text and
// markup characters unescaped.
func writeIndex(path string, posts []content.Post) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(posts); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
