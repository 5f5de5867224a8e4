package task

import (
	"strings"

	"github.com/twiced-technology-gmbh/todolist/internal/date"
)

// Encoded-string contract. These strings are parsed back out of stored tasks,
// so changing them breaks ranking and identity release.
const (
	// DescriptionSeparator joins the title and the description.
	DescriptionSeparator = " : "

	// CompletionMarker prefixes entries in the completed list.
	CompletionMarker = "✔ "

	// UnrankedRank is the rank of strings that carry no known marker.
	UnrankedRank = 4

	dueOpen  = " (Vence: "
	dueClose = ")"
)

// dueLabels are the spellings of the due-date label that may appear in an
// encoded string. Strings encoded with every field upper-cased carry the second form.
var (
	dueLabels   = []string{"(Vence:", "(VENCE:"}
	dueSuffixes = []string{" (Vence:", " (VENCE:"}
)

// marker ties a category to its display prefix and rank. Checked in order.
type marker struct {
	category Category
	icon     string
	prefix   string
	rank     int
}

var markers = []marker{
	{category: Important, icon: "★", prefix: "★ [URGENTE] ", rank: 1},
	{category: Today, icon: "📅", prefix: "📅 [HOY] ", rank: 2},
	{category: General, icon: "📝", prefix: "📝 ", rank: 3},
}

// Encode builds the display string of a task. It validates nothing; title is
// assumed non-empty. Important tasks have their title and description upper-cased.
// The due-date suffix is always written as " (Vence: dd/mm/yyyy)".
func Encode(title, description string, due *date.Date, category Category) string {
	var sb strings.Builder
	sb.WriteString(title)
	if description != "" {
		sb.WriteString(DescriptionSeparator)
		sb.WriteString(description)
	}
	text := sb.String()

	m := markerFor(category)
	if m.category == Important {
		text = strings.ToUpper(text)
	}
	text = m.prefix + text

	if due != nil {
		text += dueOpen + due.String() + dueClose
	}
	return text
}

// Rank classifies an encoded string by its leading marker:
// 1 important, 2 today, 3 general, UnrankedRank otherwise. Lower sorts first.
func Rank(encoded string) int {
	for _, m := range markers {
		if strings.HasPrefix(encoded, m.icon) {
			return m.rank
		}
	}
	return UnrankedRank
}

// CategoryOf returns the category whose marker leads encoded, or General.
func CategoryOf(encoded string) Category {
	for _, m := range markers {
		if strings.HasPrefix(encoded, m.icon) {
			return m.category
		}
	}
	return General
}

// DueDate extracts the "(Vence: dd/mm/yyyy)" date from an encoded string. The
// last label wins since the due-date suffix is always written at the end.
// Strings without a parsable date return date.Max so they sort last in their tier.
func DueDate(encoded string) date.Date {
	start, label := lastIndexAny(encoded, dueLabels)
	if start < 0 {
		return date.Max
	}
	rest := encoded[start+len(label):]
	end := strings.Index(rest, dueClose)
	if end < 0 {
		return date.Max
	}
	d, err := date.Parse(rest[:end])
	if err != nil {
		return date.Max
	}
	return d
}

// CanonicalName recovers the canonical identity from an encoded string: the
// leading marker is stripped, the due-date suffix and the description are cut,
// and the remainder is upper-cased and trimmed.
func CanonicalName(encoded string) string {
	name := encoded
	for _, m := range markers {
		if strings.HasPrefix(name, m.prefix) {
			name = strings.TrimPrefix(name, m.prefix)
			break
		}
	}

	if i, _ := indexAny(name, dueSuffixes); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, DescriptionSeparator); i >= 0 {
		name = name[:i]
	}
	return strings.ToUpper(strings.TrimSpace(name))
}

// Completed returns the completed-list form of an encoded string.
func Completed(encoded string) string {
	return CompletionMarker + encoded
}

func markerFor(c Category) marker {
	for _, m := range markers {
		if m.category == c {
			return m
		}
	}
	return markers[len(markers)-1]
}

// indexAny returns the index of the earliest occurrence in s of any of subs,
// together with the matching substring, or -1.
func indexAny(s string, subs []string) (int, string) {
	best, found := -1, ""
	for _, l := range subs {
		if i := strings.Index(s, l); i >= 0 && (best < 0 || i < best) {
			best, found = i, l
		}
	}
	return best, found
}

// lastIndexAny is like indexAny but returns the latest occurrence.
func lastIndexAny(s string, subs []string) (int, string) {
	best, found := -1, ""
	for _, l := range subs {
		if i := strings.LastIndex(s, l); i > best {
			best, found = i, l
		}
	}
	return best, found
}
