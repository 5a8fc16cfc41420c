package keybind

import "strings"

var symbolTable = map[string]string{
	"backspace":  "⌫",
	"shift":      "⇧",
	"meta":       "⌘",
	"tab":        "↹",
	"ctrl":       "⌃",
	"uparrow":    "↑",
	"downarrow":  "↓",
	"leftarrow":  "←",
	"rightarrow": "→",
	"arrowup":    "↑",
	"arrowdown":  "↓",
	"arrowleft":  "←",
	"arrowright": "→",
	"enter":      "⏎",
}

// Symbols renders a chord as display glyphs, one per token. Unknown tokens
// are returned lower-cased and otherwise unchanged.
func Symbols(p Platform, chord string) []string {
	if chord == "" {
		return []string{}
	}
	tokens := strings.Split(strings.ToLower(chord), "+")
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !p.Mac && tok == "meta" {
			tok = "ctrl"
		}
		if glyph, ok := symbolTable[tok]; ok {
			out = append(out, glyph)
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Symbols renders the chord bound to commandID, or nil when unbound.
func (b *Bindings) Symbols(commandID string) []string {
	binding, ok := b.Binding(commandID)
	if !ok {
		return nil
	}
	return Symbols(b.platform, binding.Key)
}
