package probe

import (
	"net/url"
	"regexp"
	"strings"
)

// Hostname grammar: dot-separated labels of alphanumerics and internal
// hyphens (max 63 chars, no edge hyphen), ending in an alphabetic TLD of at
// least two characters.
var domainPattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)

// Normalize trims and lower-cases a raw input string and, when it carries an
// http/https scheme, strips it down to the authority. The second return is
// false when the result does not match the hostname grammar; such inputs
// must never reach the resolver.
func Normalize(raw string) (string, bool) {
	d := strings.ToLower(strings.TrimSpace(raw))
	if strings.HasPrefix(d, "http://") || strings.HasPrefix(d, "https://") {
		if u, err := url.Parse(d); err == nil {
			d = u.Host
		}
	}
	if d == "" || !domainPattern.MatchString(d) {
		return d, false
	}
	return d, true
}
