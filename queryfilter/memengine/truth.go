package memengine

// Truth is a three-valued logic value as used by SQL.
type Truth int8

const (
	False Truth = iota
	Unknown
	True
)

func truthOf(b bool) Truth {
	if b {
		return True
	}

	return False
}

// Not negates t, Unknown stays Unknown.
func (t Truth) Not() Truth {
	switch t {
	case True:
		return False
	case False:
		return True
	default:
		return Unknown
	}
}

// And combines t and other: False dominates Unknown, Unknown dominates True.
func (t Truth) And(other Truth) Truth {
	if t == False || other == False {
		return False
	}

	if t == Unknown || other == Unknown {
		return Unknown
	}

	return True
}

func (t Truth) String() string {
	switch t {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	default:
		return "UNKNOWN"
	}
}
