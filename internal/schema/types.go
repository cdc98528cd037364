package schema

import "fmt"

// Kind says how an option is matched on the command line.
type Kind int

const (
	KindFlag Kind = iota // -x, --name
	KindArg              // one bare token, by declaration order
	KindRest             // every bare token past the declared args
)

func (k Kind) String() string {
	switch k {
	case KindArg:
		return "arg"
	case KindRest:
		return "rest"
	default:
		return "flag"
	}
}

// Type is the semantic type a value is cast to after tokenizing.
type Type int

const (
	TypeAuto Type = iota
	TypeBoolean
	TypeString
	TypeNumber
	TypeObject
	TypeArray
)

func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	default:
		return "auto"
	}
}

// TypeName returns the declaration name of a type and element type pair,
// the inverse of ParseType.
func TypeName(t, elem Type) string {
	if t != TypeArray {
		return t.String()
	}
	switch elem {
	case TypeBoolean:
		return "arrayOfBooleans"
	case TypeString:
		return "arrayOfStrings"
	case TypeNumber:
		return "arrayOfNumbers"
	default:
		return "array"
	}
}

// ParseType resolves a declaration name into a type and, for arrays, its element type.
func ParseType(name string) (Type, Type, error) {
	switch name {
	case "", "auto":
		return TypeAuto, TypeAuto, nil
	case "boolean":
		return TypeBoolean, TypeAuto, nil
	case "string":
		return TypeString, TypeAuto, nil
	case "number":
		return TypeNumber, TypeAuto, nil
	case "object":
		return TypeObject, TypeAuto, nil
	case "array":
		return TypeArray, TypeAuto, nil
	case "arrayOfBooleans":
		return TypeArray, TypeBoolean, nil
	case "arrayOfStrings":
		return TypeArray, TypeString, nil
	case "arrayOfNumbers":
		return TypeArray, TypeNumber, nil
	}
	return TypeAuto, TypeAuto, fmt.Errorf("unknown type %q", name)
}
