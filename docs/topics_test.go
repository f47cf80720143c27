package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestAllTopicsExist(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics found")
	}
	for _, topic := range topics {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("GetTopic(%q) failed: %v", topic, err)
		}
	}
}

func TestUnknownTopic(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() accepted an unknown topic")
	}
}

// TestTopicsStructure parses every topic and checks it opens with a single
// level-1 heading, so that concatenated topics render as separate chapters.
func TestTopicsStructure(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	topics = append(topics, "readme")

	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) failed: %v", topic, err)
		}
		source := []byte(content)
		root := goldmark.DefaultParser().Parse(text.NewReader(source))

		var h1 int
		ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
				h1++
			}
			return ast.WalkContinue, nil
		})
		if h1 != 1 {
			t.Errorf("topic %q has %d level-1 headings, want exactly 1", topic, h1)
		}
		if !strings.HasPrefix(content, "# ") {
			t.Errorf("topic %q does not start with its title", topic)
		}
	}
}
