package web

import "strings"

// Format is an output format for web scraping.
type Format string

const (
	FormatMarkdown           Format = "markdown"
	FormatHTML               Format = "html"
	FormatRawHTML            Format = "rawHtml"
	FormatLinks              Format = "links"
	FormatScreenshot         Format = "screenshot"
	FormatScreenshotFullPage Format = "screenshot@fullPage"
)

var knownFormats = map[Format]bool{
	FormatMarkdown:           true,
	FormatHTML:               true,
	FormatRawHTML:            true,
	FormatLinks:              true,
	FormatScreenshot:         true,
	FormatScreenshotFullPage: true,
}

// IsScreenshot reports whether the format carries base64 image data.
func (f Format) IsScreenshot() bool {
	return f == FormatScreenshot || f == FormatScreenshotFullPage
}

// ParseFormats parses a comma-separated format list, dropping unknown
// entries. An empty or fully unknown list falls back to markdown.
func ParseFormats(s string) []Format {
	var formats []Format
	for _, part := range strings.Split(s, ",") {
		f := Format(strings.TrimSpace(part))
		if knownFormats[f] {
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		return []Format{FormatMarkdown}
	}
	return formats
}
