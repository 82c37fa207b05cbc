// Package session owns the console conversation around one study run:
// asking what to generate, collecting the pasted study text, and printing
// summary results.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/studydeck/internal/study"
)

var ErrNoInput = errors.New("no study text entered")

type Choice int

const (
	ChoiceSummary    Choice = 1
	ChoiceFlashcards Choice = 2
	ChoiceBoth       Choice = 3
)

func (c Choice) IncludesSummary() bool {
	return c == ChoiceSummary || c == ChoiceBoth
}

func (c Choice) IncludesFlashcards() bool {
	return c == ChoiceFlashcards || c == ChoiceBoth
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	termStyle = lipgloss.NewStyle().Bold(true)
)

type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return c.scanner.Text(), true
}

// ReadChoice asks what to generate. Unparseable input falls back to "both";
// a number outside 1-3 is returned as-is and simply selects nothing.
func (c *Console) ReadChoice() Choice {
	fmt.Fprintln(c.out, "What do you want?")
	fmt.Fprintln(c.out, "1 = Summary only")
	fmt.Fprintln(c.out, "2 = Flashcards only")
	fmt.Fprintln(c.out, "3 = Both summary + flashcards")
	fmt.Fprint(c.out, "Enter choice (1/2/3): ")

	line, ok := c.readLine()
	if !ok {
		return ChoiceBoth
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return ChoiceBoth
	}
	return Choice(n)
}

// ReadStudyText collects the pasted text. A trailing backslash continues
// input onto the next line (backslash stripped, newline inserted); any line
// without one ends input, and an empty first line means no input at all.
func (c *Console) ReadStudyText() (string, error) {
	fmt.Fprintln(c.out, "\nPaste your study text below.")
	fmt.Fprintln(c.out, "End a line with '\\' to continue on the next line.")
	fmt.Fprintln(c.out, "Press Enter on an empty line to finish input.")
	fmt.Fprintln(c.out)

	line, ok := c.readLine()
	if !ok || line == "" {
		return "", ErrNoInput
	}

	text := line
	for strings.HasSuffix(text, "\\") {
		text = strings.TrimSuffix(text, "\\") + "\n"

		line, ok := c.readLine()
		if !ok || line == "" {
			break
		}
		text += line
	}

	if text == "" {
		return "", ErrNoInput
	}
	return text, nil
}

// PrintSummary writes the summary block, key points, and definitions.
// Sections render even when the model returned nothing for them.
func (c *Console) PrintSummary(result study.SummaryResult) {
	fmt.Fprintf(c.out, "\n%s\n%s\n\n", headerStyle.Render("=== SUMMARY ==="), result.Summary)

	fmt.Fprintln(c.out, headerStyle.Render("Key points:"))
	for _, kp := range result.KeyPoints {
		fmt.Fprintf(c.out, "- %s\n", kp)
	}

	fmt.Fprintf(c.out, "\n%s\n", headerStyle.Render("Definitions:"))
	for _, d := range result.Definitions {
		fmt.Fprintf(c.out, "%s: %s\n", termStyle.Render(d.Term), d.Definition)
	}
}
