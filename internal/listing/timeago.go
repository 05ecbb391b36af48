package listing

import (
	"fmt"
	"time"
)

// TimeAgo renders the age of t relative to now as a short label such as
// "Just now", "5 hours ago", "1 day ago" or "3 weeks ago". Future times read
// as "Just now".
func TimeAgo(t, now time.Time) string {
	hours := int(now.Sub(t) / time.Hour)
	if hours < 1 {
		return "Just now"
	}
	if hours == 1 {
		return "1 hour ago"
	}
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := hours / 24
	if days == 1 {
		return "1 day ago"
	}
	if days < 7 {
		return fmt.Sprintf("%d days ago", days)
	}

	weeks := days / 7
	if weeks == 1 {
		return "1 week ago"
	}
	return fmt.Sprintf("%d weeks ago", weeks)
}
