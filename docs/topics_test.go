package docs

import (
	"bufio"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself:
	// every topic listed in readme.md loads, and every topic file is
	// listed in readme.md.

	readme, err := Topic("readme")
	if err != nil {
		t.Fatalf("failed to load readme: %v", err)
	}

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(strings.NewReader(readme))
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			listed = append(listed, strings.TrimSpace(matches[1]))
		}
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := Topic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	for _, topic := range AllTopics() {
		found := false
		for _, l := range listed {
			if l == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopicsAreValidMarkdown(t *testing.T) {
	// Every topic must parse and open with a level-1 heading, since the
	// terminal renderer uses the first heading as the page title.
	for _, topic := range AllTopics() {
		t.Run(topic, func(t *testing.T) {
			content, err := Topic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))
			first := root.FirstChild()
			if first == nil {
				t.Fatal("topic is empty")
			}
			h, ok := first.(*ast.Heading)
			if !ok || h.Level != 1 {
				t.Errorf("topic does not open with a level-1 heading")
			}
		})
	}
}

func TestStarConcatenatesAllTopics(t *testing.T) {
	all, err := Topic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range AllTopics() {
		content, err := Topic(topic)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("topic %q missing from concatenated output", topic)
		}
	}
}

func TestUnknownTopic(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}
