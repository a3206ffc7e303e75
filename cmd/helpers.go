package cmd

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/julienpequegnot/tagdesk/internal/config"
	"github.com/julienpequegnot/tagdesk/internal/database"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

func openDB() (*database.DB, error) {
	db, err := database.New(config.DBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

func formatScore(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.1f", v)
}

func divider(n int) string {
	return strings.Repeat("─", n)
}
