package types

// Identical reports whether x and y are identical types.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return identical(x, y)
}

func identical(x, y Type) bool {
	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	}
	return false
}

// AssignableTo reports whether a value of type V may be stored in a
// variable of type T. nova has no conversions, so the types must be identical.
func AssignableTo(V, T Type) bool {
	return V != nil && T != nil && Identical(V, T)
}

func basicInfo(T Type) BasicInfo {
	if b, ok := T.(*Basic); ok {
		return b.info
	}
	return 0
}

// IsNumeric reports whether T is num.
func IsNumeric(T Type) bool {
	return basicInfo(T)&IsNum != 0
}

// IsTextType reports whether T is text.
func IsTextType(T Type) bool {
	return basicInfo(T)&IsText != 0
}

// IsBooleanType reports whether T is the bool carrier of flag.
func IsBooleanType(T Type) bool {
	return basicInfo(T)&IsBoolean != 0
}
