// Package docs embeds the user documentation topics shipped with the
// hm tool, one markdown file per topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Topic returns the content of one documentation topic. The special
// name "*" concatenates every topic.
func Topic(name string) (string, error) {
	if name == "*" {
		var b strings.Builder
		for _, t := range AllTopics() {
			content, err := Topic(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}
	content, err := topics.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// AllTopics returns the sorted names of every documentation topic.
func AllTopics() []string {
	entries, err := fs.Glob(topics, "*.md")
	if err != nil {
		// the pattern is constant, Glob cannot fail on it
		return nil
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e, ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
