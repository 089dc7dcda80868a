package gen

import (
	"fmt"

	"github.com/Solar-Falcon/raylib-ffigen/resolver"
)

// rustBaseTypes maps C fundamental types to their core::ffi equivalents.
var rustBaseTypes = map[string]string{
	"float":              "core::ffi::c_float",
	"double":             "core::ffi::c_double",
	"unsigned char":      "core::ffi::c_uchar",
	"signed char":        "core::ffi::c_schar",
	"char":               "core::ffi::c_char",
	"unsigned short":     "core::ffi::c_ushort",
	"signed short":       "core::ffi::c_short",
	"short":              "core::ffi::c_short",
	"unsigned int":       "core::ffi::c_uint",
	"signed int":         "core::ffi::c_int",
	"int":                "core::ffi::c_int",
	"unsigned long":      "core::ffi::c_ulong",
	"signed long":        "core::ffi::c_long",
	"long":               "core::ffi::c_long",
	"unsigned long long": "core::ffi::c_ulonglong",
	"signed long long":   "core::ffi::c_longlong",
	"long long":          "core::ffi::c_longlong",
	"void":               "core::ffi::c_void",
	"va_list":            "*mut core::ffi::c_void",
}

// RustBaseType maps a C base type name to Rust. Names missing from the table
// (structs, enums, aliases, bool) pass through unchanged.
func RustBaseType(base string) string {
	if mapped, ok := rustBaseTypes[base]; ok {
		return mapped
	}
	return base
}

// IsCFundamental reports whether base is one of the C types with a fixed mapping.
func IsCFundamental(base string) bool {
	_, ok := rustBaseTypes[base]
	return ok
}

// RustType converts a raylib_api.json type string to a Rust FFI type.
//
//	"const char *"  -> "*const core::ffi::c_char"
//	"char **"       -> "*mut *mut core::ffi::c_char"
//	"float[4]"      -> "[core::ffi::c_float; 4]"
func RustType(cType string) (string, error) {
	t, err := resolver.ParseCType(cType)
	if err != nil {
		return "", err
	}
	return rustTypeOf(t), nil
}

func rustTypeOf(t resolver.CType) string {
	base := RustBaseType(t.Base)
	mutability := "mut"
	if t.Const {
		mutability = "const"
	}

	switch t.Ref {
	case resolver.RefPointer:
		return fmt.Sprintf("*%s %s", mutability, base)
	case resolver.RefDoublePointer:
		return fmt.Sprintf("*%s *%s %s", mutability, mutability, base)
	case resolver.RefArray:
		return fmt.Sprintf("[%s; %d]", base, t.ArrayLen)
	default:
		return base
	}
}
