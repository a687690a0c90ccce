package rendering

import "strings"

// latexReplacer escapes the characters LaTeX treats specially:
// \ { } $ & % # ^ _ ~
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes special LaTeX characters in text
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexReplacer.Replace(text)
}
