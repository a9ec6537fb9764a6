package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rsharan/jyotish/pkg/aspect"
	"github.com/rsharan/jyotish/pkg/chart"
	"github.com/rsharan/jyotish/pkg/panchanga"
	"github.com/rsharan/jyotish/pkg/varga"
	"github.com/rsharan/jyotish/pkg/zodiac"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleTableHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleTableBody   = lipgloss.NewStyle().Foreground(colorWhite)
	styleTableBorder = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printCacheStatus prints whether the chart came from the cache.
func printCacheStatus(cached bool) {
	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}
	fmt.Println("  " + statusStyle.Render(status))
}

// =============================================================================
// Chart Tables
// =============================================================================

// newTable creates a lipgloss table with the shared chart styling.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleTableBorder).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader.Padding(0, 1)
			}
			return styleTableBody.Padding(0, 1)
		}).
		Headers(headers...)
}

// renderVargaTable renders the divisional chart table, one row per
// body, one column per varga system.
func renderVargaTable(rows []chart.VargaRow) string {
	headers := []string{"Body", "Longitude"}
	for _, sys := range varga.Systems {
		headers = append(headers, sys.String())
	}
	t := newTable(headers...)
	for _, row := range rows {
		cells := []string{row.Body.String(), zodiac.FormatInSign(row.Longitude)}
		for _, sys := range varga.Systems {
			cells = append(cells, row.Sign(sys).String())
		}
		t.Row(cells...)
	}
	return t.Render()
}

// renderNakshatraTable renders the lunar-mansion table.
func renderNakshatraTable(rows []chart.NakshatraRow) string {
	t := newTable("Body", "Longitude", "Sign", "Nakshatra", "Pada", "Lord")
	for _, row := range rows {
		t.Row(
			row.Body.String(),
			zodiac.FormatDMS(row.Longitude),
			row.Sign.String(),
			row.Nakshatra.Name,
			strconv.Itoa(row.Nakshatra.Pada),
			row.Nakshatra.Lord.String(),
		)
	}
	return t.Render()
}

// renderPanchanga renders the five limbs as labeled lines.
func renderPanchanga(p *panchanga.Result) string {
	if p == nil {
		return StyleDim.Render("panchanga unavailable (missing luminary or timezone)")
	}
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	line := func(key, value string) string {
		return keyStyle.Render(key) + " " + StyleValue.Render(value) + "\n"
	}
	return line("Vara", p.Vara) +
		line("Tithi", fmt.Sprintf("%s %s (%d)", p.Paksha, p.TithiName, p.TithiNumber)) +
		line("Nakshatra", fmt.Sprintf("%s pada %d", p.Nakshatra.Name, p.Nakshatra.Pada)) +
		line("Yoga", p.Yoga) +
		line("Karana", p.Karana)
}

// renderAspectTable renders the aspect list.
func renderAspectTable(records []aspect.Record) string {
	t := newTable("Body", "Aspect", "Body", "Orb")
	for _, r := range records {
		t.Row(
			r.BodyA.String(),
			r.Type.String(),
			r.BodyB.String(),
			fmt.Sprintf("%+.2f°", r.Delta),
		)
	}
	return t.Render()
}
