package editor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/amonks/taskmaster/task"
)

// TaskData is what the edit file shows.
type TaskData struct {
	// ID is set when editing an existing task.
	ID       string
	Deadline string
	Status   string
	Text     string
}

// DataFromDraft fills TaskData from a draft. id is empty for new tasks.
func DataFromDraft(d task.Draft, id string) TaskData {
	return TaskData{
		ID:       id,
		Deadline: d.Deadline,
		Status:   d.Status,
		Text:     d.Text,
	}
}

var taskTemplate = template.Must(template.New("task").Parse(`
{{- if .ID }}# task {{ .ID }}
{{ end -}}
deadline = {{ printf "%q" .Deadline }} # YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339
status = {{ printf "%q" .Status }} # pending, done
---
{{ .Text }}
`))

// RenderTaskTOML renders data as TOML frontmatter followed by the task text.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

type frontmatter struct {
	Deadline string `toml:"deadline"`
	Status   string `toml:"status"`
}

// ParseTaskTOML reads an edited file back into a draft. Field validation is
// left to task.Editor.Submit.
func ParseTaskTOML(content string) (task.Draft, error) {
	head, body := splitFrontmatter(content)

	var parsed frontmatter
	if _, err := toml.Decode(head, &parsed); err != nil {
		return task.Draft{}, fmt.Errorf("parse TOML: %w", err)
	}

	return task.Draft{
		Text:     strings.TrimSpace(body),
		Status:   strings.ToLower(strings.TrimSpace(parsed.Status)),
		Deadline: strings.TrimSpace(parsed.Deadline),
	}, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return content, ""
}

// EditTask opens d in the editor and returns the edited draft. id labels
// the file when editing an existing task.
func EditTask(ctx context.Context, d task.Draft, id string) (task.Draft, error) {
	content, err := RenderTaskTOML(DataFromDraft(d, id))
	if err != nil {
		return task.Draft{}, err
	}

	tmpfile, err := os.CreateTemp("", "taskmaster-task-*.md")
	if err != nil {
		return task.Draft{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return task.Draft{}, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return task.Draft{}, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(ctx, tmpPath); err != nil {
		return task.Draft{}, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return task.Draft{}, fmt.Errorf("read edited file: %w", err)
	}
	return ParseTaskTOML(string(edited))
}
