package types

import (
	"testing"

	"github.com/you-not-fish/nova/internal/syntax"
)

func TestIdentical(t *testing.T) {
	p := func(name string) *Var { return NewVar(syntax.Pos{}, name, Typ[Num]) }

	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same basic", Typ[Num], Typ[Num], true},
		{"diff basic", Typ[Num], Typ[Text], false},
		{"bool vs num", Typ[Bool], Typ[Num], false},
		{"nil", nil, Typ[Num], false},
		{"sig vs basic", NewFunc([]*Var{p("a")}, Typ[Num]), Typ[Num], false},
		{"sigs never identical", NewFunc(nil, Typ[Num]), NewFunc(nil, Typ[Num]), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Identical(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Identical(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAssignableTo(t *testing.T) {
	tests := []struct {
		v, t Type
		want bool
	}{
		{Typ[Num], Typ[Num], true},
		{Typ[Text], Typ[Text], true},
		{Typ[Bool], Typ[Bool], true},
		{Typ[Num], Typ[Bool], false},
		{Typ[Text], Typ[Num], false},
		{nil, Typ[Num], false},
	}

	for _, tt := range tests {
		if got := AssignableTo(tt.v, tt.t); got != tt.want {
			t.Errorf("AssignableTo(%v, %v) = %v, want %v", tt.v, tt.t, got, tt.want)
		}
	}
}

func TestBasicPredicates(t *testing.T) {
	tests := []struct {
		typ                    Type
		numeric, text, boolean bool
	}{
		{Typ[Num], true, false, false},
		{Typ[Text], false, true, false},
		{Typ[Bool], false, false, true},
		{NewFunc(nil, nil), false, false, false},
		{nil, false, false, false},
	}

	for _, tt := range tests {
		if got := IsNumeric(tt.typ); got != tt.numeric {
			t.Errorf("IsNumeric(%v) = %v", tt.typ, got)
		}
		if got := IsTextType(tt.typ); got != tt.text {
			t.Errorf("IsTextType(%v) = %v", tt.typ, got)
		}
		if got := IsBooleanType(tt.typ); got != tt.boolean {
			t.Errorf("IsBooleanType(%v) = %v", tt.typ, got)
		}
	}
}
