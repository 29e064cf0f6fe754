// Package ui holds the lipgloss styles for pushwatch's line output.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the output.
var (
	PrimaryColor = lipgloss.Color("205")
	AccentColor  = lipgloss.Color("86")
	SuccessColor = lipgloss.Color("42")
	FailureColor = lipgloss.Color("196")
	MutedColor   = lipgloss.Color("245")
)

// Styles for the banner and status lines.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	AccentStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessColor)

	FailureStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FailureColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)
