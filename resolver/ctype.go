package resolver

import (
	"fmt"
	"strconv"
	"strings"
)

// RefKind describes the declarator wrapped around a C base type.
type RefKind int

const (
	RefNone RefKind = iota
	RefPointer
	RefDoublePointer
	RefArray
)

func (k RefKind) String() string {
	switch k {
	case RefNone:
		return "value"
	case RefPointer:
		return "pointer"
	case RefDoublePointer:
		return "double pointer"
	case RefArray:
		return "array"
	default:
		return "unknown"
	}
}

// CType is a parsed raylib API type string such as "const char *" or "float[4]".
type CType struct {
	Base     string // e.g. "char", "unsigned int", "Vector2"
	Const    bool
	Ref      RefKind
	ArrayLen int // RefArray only
}

// ParseCType parses a type string in raylib_api.json's convention: an optional
// leading "const ", a base type name, then an optional " *", " **" or "[N]".
// Markers are checked in that order. A malformed array size is an error.
func ParseCType(s string) (CType, error) {
	var t CType

	dt := s
	if rest, ok := strings.CutPrefix(dt, "const "); ok {
		dt = rest
		t.Const = true
	}

	switch {
	case strings.HasSuffix(dt, " *"):
		t.Base = strings.TrimSuffix(dt, " *")
		t.Ref = RefPointer
	case strings.HasSuffix(dt, " **"):
		t.Base = strings.TrimSuffix(dt, " **")
		t.Ref = RefDoublePointer
	case strings.Contains(dt, "["):
		open := strings.Index(dt, "[")
		closing := strings.Index(dt[open:], "]")
		if closing < 0 {
			return CType{}, fmt.Errorf("array type %q: missing ']'", s)
		}
		size, err := strconv.ParseUint(dt[open+1:open+closing], 10, 32)
		if err != nil {
			return CType{}, fmt.Errorf("array type %q: invalid size: %w", s, err)
		}
		t.Base = strings.TrimSpace(dt[:open])
		t.Ref = RefArray
		t.ArrayLen = int(size)
	default:
		t.Base = dt
		t.Ref = RefNone
	}

	return t, nil
}
