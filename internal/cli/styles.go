// SPDX-License-Identifier: MIT

package cli

import "github.com/charmbracelet/lipgloss"

// Color palette for CLI output, tuned for dark terminal backgrounds.
const (
	// ColorPrimary is used for the title and primary emphasis.
	ColorPrimary = lipgloss.Color("#E11D48")

	// ColorMuted is used for subtitles and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorWarning is used for warnings printed before falling back to defaults.
	ColorWarning = lipgloss.Color("#F59E0B")
)

var (
	// TitleStyle is for the tool name in help output.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// WarningStyle is for non-fatal warnings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
