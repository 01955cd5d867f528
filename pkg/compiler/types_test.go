package compiler

import "testing"

func TestPromote(t *testing.T) {
	tests := []struct {
		op          TokenType
		left, right DataType
		want        DataType
		ok          bool
	}{
		{PLUS, TypeInt, TypeInt, TypeInt, true},
		{PLUS, TypeInt, TypeFloat, TypeFloat, true},
		{STAR, TypeChar, TypeFloat, TypeFloat, true},
		{MINUS, TypeChar, TypeInt, TypeInt, true},
		{SLASH, TypeChar, TypeChar, TypeChar, true},
		{LESS, TypeFloat, TypeInt, TypeFloat, true},
		{PERCENT, TypeInt, TypeInt, TypeInt, true},
		{PERCENT, TypeInt, TypeFloat, TypeError, false},
		{PERCENT, TypeChar, TypeInt, TypeError, false},
		{PERCENT, TypeError, TypeFloat, TypeError, true},
		{PLUS, TypeError, TypeInt, TypeError, true},
		{PLUS, TypeInt, TypeError, TypeError, true},
	}

	for _, tt := range tests {
		got, ok := Promote(tt.op, tt.left, tt.right)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Promote(%s, %s, %s) = (%s, %t), want (%s, %t)",
				tt.op, tt.left, tt.right, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAssignable(t *testing.T) {
	tests := []struct {
		dst, src DataType
		want     bool
	}{
		{TypeInt, TypeInt, true},
		{TypeFloat, TypeInt, true},
		{TypeFloat, TypeChar, true},
		{TypeInt, TypeFloat, false},
		{TypeChar, TypeInt, false},
		{TypeInt, TypeChar, false},
		{TypeChar, TypeChar, true},
	}
	for _, tt := range tests {
		if got := Assignable(tt.dst, tt.src); got != tt.want {
			t.Errorf("Assignable(%s, %s) = %t, want %t", tt.dst, tt.src, got, tt.want)
		}
	}
}

func TestReturnable(t *testing.T) {
	tests := []struct {
		fn, val DataType
		want    bool
	}{
		{TypeInt, TypeInt, true},
		{TypeFloat, TypeInt, true},
		{TypeFloat, TypeChar, false},
		{TypeInt, TypeFloat, false},
		{TypeVoid, TypeVoid, true},
		{TypeVoid, TypeInt, false},
		{TypeInt, TypeVoid, false},
	}
	for _, tt := range tests {
		if got := Returnable(tt.fn, tt.val); got != tt.want {
			t.Errorf("Returnable(%s, %s) = %t, want %t", tt.fn, tt.val, got, tt.want)
		}
	}
}

func TestTypeOf(t *testing.T) {
	cases := map[TokenType]DataType{
		INT:        TypeInt,
		FLOAT:      TypeFloat,
		CHAR:       TypeChar,
		VOID:       TypeVoid,
		IDENTIFIER: TypeError,
	}
	for tt, want := range cases {
		if got := TypeOf(tt); got != want {
			t.Errorf("TypeOf(%s) = %s, want %s", tt, got, want)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	names := map[DataType]string{
		TypeInt:   "int",
		TypeFloat: "float",
		TypeChar:  "char",
		TypeVoid:  "void",
		TypeError: "error",
	}
	for dt, want := range names {
		if got := dt.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(dt), got, want)
		}
	}
}
