package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// Prompter reads validated line input interactively.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Ask prints the prompt and reads lines until validate accepts one. A nil
// validate accepts any input, including empty. On EOF the empty string is
// returned.
func (p *Prompter) Ask(prompt string, validate func(string) bool) string {
	for {
		fmt.Fprint(p.out, colorCyan+prompt+colorReset)
		if !p.in.Scan() {
			return ""
		}
		input := strings.TrimSpace(p.in.Text())
		if validate == nil || validate(input) {
			return input
		}
		fmt.Fprintln(p.out, colorRed+"Invalid input, please try again."+colorReset)
	}
}

// IsPlatform accepts "ebay" or "etsy", case-insensitively.
func IsPlatform(input string) bool {
	switch strings.ToLower(input) {
	case "ebay", "etsy":
		return true
	}
	return false
}

// NonEmpty accepts any non-empty input.
func NonEmpty(input string) bool {
	return input != ""
}

// IsOptionalPrice accepts an empty string (no ceiling) or any decimal.
func IsOptionalPrice(input string) bool {
	if input == "" {
		return true
	}
	_, err := strconv.ParseFloat(input, 64)
	return err == nil
}

// Green wraps s in the result-line color.
func Green(s string) string {
	return colorGreen + s + colorReset
}

// Yellow wraps s in the empty-result color.
func Yellow(s string) string {
	return colorYellow + s + colorReset
}
