package text

// This consists of a bunch of text utilities to help in generating pretty and meaningful
// messages from the REPL and the file runner.

import (
	"strings"
)

const (
	VERSION = "0.1.0"
	PROMPT  = "→ "

	BULLET         = "  ▪ "
	BULLET_SPACING = "    " // I.e. whitespace the same width as BULLET.
)

var (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"

	ERROR = Red("error") + ": "
	OK    = "ok"
)

func Cyan(s string) string {
	return CYAN + s + RESET
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Yellow(s string) string {
	return YELLOW + s + RESET
}

func Emph(s string) string {
	return "'" + s + "'"
}

func Logo() string {
	var padding string
	if len(VERSION)%2 == 1 {
		padding = ","
	}
	titleText := " zero-to-fib" + padding + " version " + VERSION + " "
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	logoString := "\n" +
		leftMargin + "╔" + bar + "λ" + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + "λ" + bar + "╝\n\n"
	return logoString
}

const HELP = "\nUsage: zero-to-fib [-v | --version] [-h | --help] [file]\n\n" +
	"With no arguments, starts the REPL, which reads one JSON AST document per line.\n" +
	"With a filename, evaluates the JSON AST document in the file and prints one\n" +
	"value per top-level form.\n\n"
