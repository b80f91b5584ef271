// Package topic converts between GCN Classic topic strings and their
// (format, notice type) parts, and holds the notice-type catalogue.
//
// Topics look like "gcn.classic.voevent.SWIFT_BAT_GRB_POS_ACK".
package topic

import "strings"

const prefix = "gcn.classic"

// Notice formats offered for classic notices.
const (
	FormatText    = "text"
	FormatVOEvent = "voevent"
	FormatBinary  = "binary"
)

var formats = []string{FormatText, FormatVOEvent, FormatBinary}

// FormatAndNoticeType is the decoded form of a topic.
type FormatAndNoticeType struct {
	NoticeFormat string `json:"noticeFormat"`
	NoticeType   string `json:"noticeType"`
}

// Parse splits a topic into its format and notice type. Parts that are
// missing come back empty; callers use the result for display only.
func Parse(topic string) FormatAndNoticeType {
	parts := strings.Split(topic, ".")
	var out FormatAndNoticeType
	if len(parts) > 2 {
		out.NoticeFormat = parts[2]
	}
	if len(parts) > 3 {
		out.NoticeType = parts[3]
	}
	return out
}

// Format builds the topic for a format and notice type.
func Format(noticeFormat, noticeType string) string {
	return prefix + "." + noticeFormat + "." + noticeType
}

// Topics builds one topic per notice type, all in the same format.
func Topics(noticeFormat string, noticeTypes []string) []string {
	out := make([]string, len(noticeTypes))
	for i, nt := range noticeTypes {
		out[i] = Format(noticeFormat, nt)
	}
	return out
}

// Formats returns the supported notice formats.
func Formats() []string {
	return append([]string(nil), formats...)
}

func IsKnownFormat(f string) bool {
	for _, known := range formats {
		if f == known {
			return true
		}
	}
	return false
}
