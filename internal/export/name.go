package export

import (
	"regexp"
	"strings"
)

var unsafeRun = regexp.MustCompile(`[^a-z0-9]+`)

// FileName derives the artifact name from the business type, e.g.
// "Small Business" becomes "palette-small-business.png". An empty or
// entirely unsafe value yields "palette-design.png".
func FileName(businessType string) string {
	s := unsafeRun.ReplaceAllString(strings.ToLower(businessType), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "design"
	}
	return "palette-" + s + ".png"
}
