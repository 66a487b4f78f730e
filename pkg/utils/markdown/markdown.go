// Package markdown provides the small set of markdown builders used to
// compose the generated README.
package markdown

import (
	"fmt"
	"strings"
)

// Bold wraps text in strong emphasis
func Bold(text string) string {
	return "**" + text + "**"
}

// Code wraps text in an inline code span. The fence is one backtick longer
// than the longest backtick run in text, and text starting or ending with a
// backtick is padded with a space on both sides.
func Code(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}

	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		text = " " + text + " "
	}
	return fence + text + fence
}

// CodeBlock wraps text in a fenced code block tagged with lang
func CodeBlock(text, lang string) string {
	return fmt.Sprintf("```%s\n%s\n```", lang, text)
}

// ListItem renders text as a bulleted list item
func ListItem(text string) string {
	return "- " + text
}

// IndentLines prefixes every non-empty line of text with size spaces
func IndentLines(text string, size int) string {
	pad := strings.Repeat(" ", size)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
