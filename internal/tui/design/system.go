package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
// Following 4px base unit for consistent spacing
const (
	SpaceNone = 0
	SpaceXS   = 1 // 4px
	SpaceSM   = 2 // 8px
	SpaceMD   = 3 // 12px
	SpaceLG   = 4 // 16px

	// Swatch cell dimensions in the result grid
	SwatchCellWidth   = 18
	SwatchBlockHeight = 3
	SwatchColumns     = 4

	MinContentWidth = 40
	MaxContentWidth = 96
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	// Brand Colors
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#7C3AED",
		Dark:  "#A78BFA",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#4F46E5",
		Dark:  "#A5B4FC",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutral Colors
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#212529",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1E293B",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#334155",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#7C3AED",
		Dark:  "#A78BFA",
	}

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#D1D5DB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#94A3B8",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#64748B",
	}

	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}
)

// Base Styles
var (
	TextStyle          = lipgloss.NewStyle().Foreground(ColorText)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorTextSecondary)
	TextMutedStyle     = lipgloss.NewStyle().Foreground(ColorTextMuted)
	TextSuccessStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	TextWarningStyle   = lipgloss.NewStyle().Foreground(ColorWarning)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
)

// Component Styles
var (
	PanelStyle = BorderStyle.
			Padding(SpaceXS, SpaceSM)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				MarginBottom(SpaceXS)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Width(18)

	// Stepper
	StepActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
	StepDoneStyle    = lipgloss.NewStyle().Foreground(ColorSuccess)
	StepPendingStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)

	// Form controls
	FieldStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, SpaceXS)

	FieldFocusedStyle = FieldStyle.
				Foreground(ColorPrimary).
				Bold(true)

	OptionStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, SpaceXS)

	OptionSelectedStyle = OptionStyle.
				Foreground(ColorBackground).
				Background(ColorPrimary).
				Bold(true)

	OptionCursorStyle = OptionStyle.
				Foreground(ColorPrimary).
				Underline(true)

	// Button Styles
	ButtonStyle = lipgloss.NewStyle().
			Padding(0, SpaceSM).
			Background(ColorPrimary).
			Foreground(ColorBackground).
			Bold(true)

	ButtonDisabledStyle = ButtonStyle.
				Background(ColorTextMuted).
				Foreground(ColorSurfaceAlt)

	// Swatch grid
	SwatchCellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Width(SwatchCellWidth)

	SwatchCellSelectedStyle = SwatchCellStyle.
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorBorderFocus)

	SwatchRoleStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	SwatchHexStyle  = lipgloss.NewStyle().Foreground(ColorTextSecondary)
)

// Status Bar Styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)
)

// Overlay styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorBackgroundOverlay).
					Foreground(ColorText).
					Padding(1, 2)

	ModalStyle = CenteredOverlayContainerStyle.
			BorderForeground(ColorError).
			Width(48).
			Align(lipgloss.Center)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorBackgroundOverlay).
			Foreground(ColorText).
			Padding(1, 2)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// CenterHorizontal pads content so it sits in the middle of width.
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
