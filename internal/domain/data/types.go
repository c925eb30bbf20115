package data

import (
	"fmt"
	"strings"
)

// Type is the type tag of an attribute
type Type string

const (
	TypeString  Type = "TEXT"
	TypeInteger Type = "INT"
)

// ParseType converts a type name (as written in fixtures or on the command line) into a Type
func ParseType(name string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TEXT", "STRING", "STR":
		return TypeString, nil
	case "INT", "INTEGER":
		return TypeInteger, nil
	default:
		return "", fmt.Errorf("unknown attribute type %q", name)
	}
}

// Matches reports whether v is of type t. There is no coercion between types.
func (t Type) Matches(v Value) bool {
	return v.kind != "" && v.kind == t
}

// rank orders the variants: strings sort before integers
func (t Type) rank() int {
	switch t {
	case TypeString:
		return 0
	case TypeInteger:
		return 1
	default:
		return -1
	}
}
