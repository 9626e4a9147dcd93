// Package device derives human-readable device names from User-Agent strings
// for audit events.
package device

import (
	"fmt"
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent converts a raw User-Agent header into a display name like
// "Chrome on Intel Mac OS X 10_15_7". Unparseable agents still produce a
// non-empty name.
func ParseUserAgent(rawUserAgent string) string {
	if rawUserAgent == "" {
		return "Unknown Device"
	}

	ua := useragent.New(rawUserAgent)
	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}
	os := ua.OS()
	if os == "" {
		os = "Unknown OS"
	}

	return strings.TrimSpace(fmt.Sprintf("%s on %s", browser, os))
}
