package compiler

// DataType is the static type of an expression or a declared variable.
type DataType int

//go:generate go tool stringer -type DataType -linecomment
const (
	TypeInt   DataType = iota // int
	TypeFloat                 // float
	TypeChar                  // char
	TypeVoid                  // void
	TypeError                 // error
)

// TypeOf maps a type keyword to its DataType. Any other token yields
// TypeError.
func TypeOf(tt TokenType) DataType {
	switch tt {
	case INT:
		return TypeInt
	case FLOAT:
		return TypeFloat
	case CHAR:
		return TypeChar
	case VOID:
		return TypeVoid
	default:
		return TypeError
	}
}

// Assignable reports whether a value of type src may be stored in a variable
// of type dst. int and char widen to float; nothing narrows.
func Assignable(dst, src DataType) bool {
	if dst == src {
		return true
	}
	return dst == TypeFloat && (src == TypeInt || src == TypeChar)
}

// Returnable reports whether a function declared to return fn may return a
// value of type val. Only int widens to float here.
func Returnable(fn, val DataType) bool {
	return fn == val || (fn == TypeFloat && val == TypeInt)
}

// Promote computes the result type of an arithmetic or comparison operator
// applied to left and right. ok is false when the operands are invalid for
// op; the result is then TypeError. An operand that is already TypeError
// yields TypeError with ok set, so a failure is only reported once.
func Promote(op TokenType, left, right DataType) (DataType, bool) {
	if left == TypeError || right == TypeError {
		return TypeError, true
	}
	if op == PERCENT && (left != TypeInt || right != TypeInt) {
		return TypeError, false
	}
	switch {
	case left == TypeFloat || right == TypeFloat:
		return TypeFloat, true
	case left == TypeInt || right == TypeInt:
		return TypeInt, true
	default:
		return TypeChar, true
	}
}
