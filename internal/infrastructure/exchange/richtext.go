package exchange

import "regexp"

// cardIDAttr matches embedded card references produced by the rich-text
// editor, e.g. data-card-id="<id>".
var cardIDAttr = regexp.MustCompile(`data-card-id="([^"]*)"`)

// RewriteCardRefs maps every embedded data-card-id reference in content
// through mapping. References that do not resolve are blanked rather than
// left pointing at a foreign session's id.
func RewriteCardRefs(content string, mapping map[string]string) string {
	if content == "" {
		return content
	}
	return cardIDAttr.ReplaceAllStringFunc(content, func(attr string) string {
		old := cardIDAttr.FindStringSubmatch(attr)[1]
		if fresh, ok := mapping[old]; ok {
			return `data-card-id="` + fresh + `"`
		}
		return `data-card-id=""`
	})
}
