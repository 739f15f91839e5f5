package jsx

import "fmt"

// Tri is a three-valued truth.
type Tri int8

const (
	Unknown Tri = iota
	No
	Yes
)

// TriOf converts a known boolean into a Tri.
func TriOf(v bool) Tri {
	if v {
		return Yes
	}
	return No
}

// Known tells if the value is either Yes or No.
func (t Tri) Known() bool {
	return t == Yes || t == No
}

// Or combines two answers: Yes wins, then Unknown, then No.
func (t Tri) Or(other Tri) Tri {
	switch {
	case t == Yes || other == Yes:
		return Yes
	case t == Unknown || other == Unknown:
		return Unknown
	default:
		return No
	}
}

func (t Tri) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case No:
		return "no"
	case Yes:
		return "yes"
	default:
		return fmt.Sprintf("tri-invalid(%d)", t)
	}
}

// Presence tells whether a named attribute is set on an element.
type Presence int8

const (
	// Absent means the attribute is not there and no spread could have set it.
	Absent Presence = iota
	// Possible means the attribute is not written out, but a spread may set it.
	Possible
	// Present means the attribute is written out.
	Present
)

func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case Possible:
		return "possible"
	case Present:
		return "present"
	default:
		return fmt.Sprintf("presence-invalid(%d)", p)
	}
}
