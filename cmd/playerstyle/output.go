package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

// outputFlags are shared by every command with structured output.
type outputFlags struct {
	json bool
	yaml bool
}

func (o outputFlags) format() outputFormat {
	switch {
	case o.json:
		return formatJSON
	case o.yaml:
		return formatYAML
	default:
		return formatText
	}
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// styler applies lipgloss styles only when writing to a terminal, so piped
// snippets stay free of escape codes.
type styler struct {
	enabled bool
}

func newStyler(w io.Writer) styler {
	return styler{enabled: supportsUnicode(w)}
}

func (s styler) heading(text string) string {
	if !s.enabled {
		return text
	}
	return headingStyle.Render(text)
}

func (s styler) section(text string) string {
	if !s.enabled {
		return text
	}
	return sectionStyle.Render(text)
}

func (s styler) muted(text string) string {
	if !s.enabled {
		return text
	}
	return mutedStyle.Render(text)
}

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func writeYAML(w io.Writer, payload any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(payload); err != nil {
		return err
	}
	return encoder.Close()
}

func writeStructured(w io.Writer, format outputFormat, payload any) error {
	switch format {
	case formatJSON:
		return writeJSON(w, payload)
	case formatYAML:
		return writeYAML(w, payload)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
