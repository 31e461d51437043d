package overseerr

import "fmt"

// titleRules is the ordered list of extraction rules used to resolve a
// human-readable title for a request. Rules are applied in priority order and
// the first non-empty match wins. The broker populates different fields
// depending on media type and version, so every plausible location is tried.
var titleRules = []func(p *requestPayload) string{
	func(p *requestPayload) string {
		if p.Media != nil {
			return p.Media.Title
		}
		return ""
	},
	func(p *requestPayload) string {
		if p.Media != nil {
			return p.Media.Name
		}
		return ""
	},
	func(p *requestPayload) string {
		if p.Media != nil {
			return p.Media.OriginalTitle
		}
		return ""
	},
	func(p *requestPayload) string {
		if p.Media != nil {
			return p.Media.OriginalName
		}
		return ""
	},
	func(p *requestPayload) string { return p.Title },
	func(p *requestPayload) string { return p.Name },
}

// resolveTitle applies titleRules and falls back to a synthetic placeholder,
// so a Request never ends up without a title.
func resolveTitle(p *requestPayload) string {
	for _, rule := range titleRules {
		if title := rule(p); title != "" {
			return title
		}
	}
	return fmt.Sprintf("Request #%d", p.ID)
}
