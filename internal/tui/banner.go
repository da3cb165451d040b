package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Machina.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	s1 := termenv.String("                      _     _            ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("  _ __ ___   __ _  __| |__ (_)_ __   __ _ ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" | '_ ` _ \\ / _` |/ __| '_ \\| | '_ \\ / _` |").Foreground(p.Color("#c084fc"))
	s4 := termenv.String(" | | | | | | (_| | (__| | | | | | | | (_| |").Foreground(p.Color("#e879f9"))
	s5 := termenv.String(" |_| |_| |_|\\__,_|\\___|_| |_|_|_| |_|\\__,_|").Foreground(p.Color("#f472b6"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}

// StateLabel renders a state name with emphasis for demo output.
func StateLabel(name string) string {
	p := termenv.ColorProfile()
	return termenv.String(name).Foreground(p.Color("#34d399")).Bold().String()
}

// EventLabel renders an event name for demo output.
func EventLabel(name string) string {
	p := termenv.ColorProfile()
	return termenv.String(name).Foreground(p.Color("#60a5fa")).String()
}

// ErrorLabel renders an error for demo output.
func ErrorLabel(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String(msg).Foreground(p.Color("#f87171")).String()
}
