// Package docs embeds the markdown documentation served by the `topic`
// subcommand.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// GetTopic returns the markdown content of one topic. The pseudo topic "*"
// expands to every topic, concatenated.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}

	content, err := topics.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates several topics into one document, a newline after
// each. Star expansion is GetTopic's job.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics lists the available topics, sorted. The readme is the table
// of contents, not a topic, so it is excluded.
func GetAllTopics() ([]string, error) {
	entries, err := topics.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
