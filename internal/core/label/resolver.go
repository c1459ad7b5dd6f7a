package label

import (
	"fmt"
	"strings"

	"github.com/mselkit/ganttline/internal/core/model"
)

const (
	// OnBarLimit is the rune budget for the on-bar fallback text.
	OnBarLimit = 30
	// TooltipLimit is the rune budget for the tooltip snippet.
	TooltipLimit = 120
)

// Truncate cuts s to at most n runes, appending "..." when anything was cut.
// Rune-counted so multi-byte labels never split mid-character.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// subjectAbsent reports whether a subject value should fall back to the
// message: empty after trimming, or the literal "null" in any case (a common
// artifact of spreadsheet exports).
func subjectAbsent(subject string) bool {
	trimmed := strings.TrimSpace(subject)
	return trimmed == "" || strings.EqualFold(trimmed, "null")
}

// ResolveDisplay computes the on-bar text and tooltip snippet for one inject.
// A present subject is used verbatim; an absent one falls back to the first
// OnBarLimit runes of the message. The tooltip is always the truncated
// message, independent of subject presence.
func ResolveDisplay(subject, message string) (onBar, tooltip string) {
	if subjectAbsent(subject) {
		onBar = Truncate(message, OnBarLimit)
	} else {
		onBar = subject
	}
	tooltip = Truncate(message, TooltipLimit)
	return onBar, tooltip
}

// ResolveAxisLabel picks the active label column and, when disambiguating,
// appends a 1-based sequence suffix so charts cannot collapse distinct injects
// that share a persona or channel. Missing field values pass through empty.
func ResolveAxisLabel(persona, channel string, field model.LabelField, injectOrder int, disambiguate bool) string {
	base := persona
	if field == model.LabelChannel {
		base = channel
	}
	if disambiguate {
		return fmt.Sprintf("%s (%d)", base, injectOrder+1)
	}
	return base
}

// ResolveImageRef returns the image URL and whether one is present. A blank
// or whitespace-only value is absent, never an empty placeholder.
func ResolveImageRef(imageURL string) (string, bool) {
	trimmed := strings.TrimSpace(imageURL)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// ResolveBundle composes the full label bundle for one inject.
func ResolveBundle(in model.Inject, field model.LabelField, injectOrder int, disambiguate bool) model.LabelBundle {
	onBar, tooltip := ResolveDisplay(in.Subject, in.Message)
	url, ok := ResolveImageRef(in.ImageURL)
	return model.LabelBundle{
		OnBar:     onBar,
		Tooltip:   tooltip,
		AxisLabel: ResolveAxisLabel(in.Persona, in.Channel, field, injectOrder, disambiguate),
		ImageURL:  url,
		HasImage:  ok,
	}
}
