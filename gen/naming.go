package gen

import (
	"strings"

	"github.com/Solar-Falcon/raylib-ffigen/model"
)

// EnumValueName derives a Rust variant name from a C enumerator, e.g.
// ("CameraMode", "CAMERA_THIRD_PERSON") -> "ThirdPerson".
//
// The enum's prefix words are dropped, then every remaining word longer than
// one byte keeps its first byte and has the rest lower-cased. Words starting
// with IVEC keep two leading bytes and words ending in 2D keep the final D,
// so IVEC2 -> IVec2 and SAMPLER2D -> Sampler2D. Enums listed as digit
// preserving leave words containing digits untouched (R8G8B8A8).
func EnumValueName(opts *model.Options, enum, value string) string {
	parts := skipWords(strings.Split(value, "_"), opts.PrefixCount(enum))
	keepDigits := opts.PreservesDigits(enum)

	var b strings.Builder
	for _, part := range parts {
		if len(part) > 1 && !(keepDigits && strings.ContainsAny(part, "0123456789")) {
			i, j := 1, len(part)
			if strings.HasPrefix(part, "IVEC") {
				i++
			}
			if strings.HasSuffix(part, "2D") {
				j--
			}
			part = part[:i] + asciiLower(part[i:j]) + part[j:]
		}
		b.WriteString(part)
	}
	return b.String()
}

// BitflagValueName derives a bitflags constant name: the prefix words are
// dropped and the rest kept as-is, e.g. "FLAG_VSYNC_HINT" -> "VSYNC_HINT".
func BitflagValueName(opts *model.Options, enum, value string) string {
	parts := skipWords(strings.Split(value, "_"), opts.PrefixCount(enum))
	return strings.Join(parts, "_")
}

func skipWords(parts []string, n int) []string {
	if n >= len(parts) {
		return nil
	}
	return parts[n:]
}

// asciiLower lower-cases ASCII letters only; other bytes are left alone.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
