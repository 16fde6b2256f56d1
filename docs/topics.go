// Package docs embeds the user documentation of the shop command.
//
// Each topic is a markdown file, readme.md is the index listing them. A
// subcommand name can be used in place of the topic that documents it.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// index is the topic shown when none is asked for.
const index = "readme"

// commandTopics maps each shop subcommand to the topic documenting it.
var commandTopics = map[string]string{
	"add":    "ledger",
	"remove": "ledger",
	"list":   "ledger",
	"total":  "total",
	"export": "csv",
	"import": "csv",
	"query":  "query",
	"topic":  index,
}

// Resolve returns the topic for name, which is either a topic or a subcommand.
func Resolve(name string) string {
	if topic, ok := commandTopics[name]; ok {
		return topic
	}
	return name
}

// GetTopic returns the markdown content of the topic name, see Resolve.
func GetTopic(name string) (string, error) {
	content, err := files.ReadFile(Resolve(name) + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// GetTopics returns the content of several topics, separated by an empty
// line. "*" stands for every topic but the index. A topic asked for twice,
// directly or through a subcommand, is printed once.
func GetTopics(names ...string) (string, error) {
	var topics []string
	for _, name := range names {
		if name != "*" {
			topics = append(topics, Resolve(name))
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		topics = append(topics, all...)
	}

	var b strings.Builder
	seen := make(map[string]bool)
	for _, topic := range topics {
		if seen[topic] {
			continue
		}
		seen[topic] = true
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of topics, the index excluded.
func GetAllTopics() ([]string, error) {
	paths, err := fs.Glob(files, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, p := range paths {
		if topic := strings.TrimSuffix(p, ".md"); topic != index {
			topics = append(topics, topic)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
