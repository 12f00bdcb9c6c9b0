package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// prompter reads line-oriented answers for the interactive flows. It wraps
// App.in once so buffered input survives across prompts.
type prompter struct {
	r   *bufio.Reader
	app *App
}

func (a *App) prompter() *prompter {
	return &prompter{r: bufio.NewReader(a.in), app: a}
}

// ask prints a label and returns the trimmed answer ("" when the user just
// presses enter).
func (p *prompter) ask(label string) string {
	fmt.Fprintf(p.app.out, "%s: ", label)
	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// askDefault is ask with a default shown and applied on empty input.
func (p *prompter) askDefault(label, def string) string {
	answer := p.ask(fmt.Sprintf("%s [%s]", label, def))
	if answer == "" {
		return def
	}
	return answer
}

// askFloat re-prompts until the answer parses (empty returns 0).
func (p *prompter) askFloat(label string) float64 {
	for {
		answer := p.ask(label)
		if answer == "" {
			return 0
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err == nil {
			return v
		}
		fmt.Fprintln(p.app.errOut, "please enter a number")
	}
}

// confirm asks a yes/no question; only "y"/"yes" is a yes.
func (p *prompter) confirm(label string) bool {
	answer := strings.ToLower(p.ask(label + " (y/N)"))
	return answer == "y" || answer == "yes"
}
