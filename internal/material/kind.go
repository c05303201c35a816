// Package material models the viewer's swappable surface material: one
// variant type per shading model, an explicit table of which properties each
// model supports, the panel's parameter record and the binder that keeps the
// shared material in sync with it.
package material

import (
	"fmt"
	"strings"
)

// Kind selects a shading model.
type Kind int

const (
	KindStandard Kind = iota
	KindBasic
	KindNormal
	KindMatcap
	KindDepth
	KindLambert
	KindPhong
	KindToon
	KindPhysical
	numKinds
)

var kindNames = [numKinds]string{
	KindStandard: "standard",
	KindBasic:    "basic",
	KindNormal:   "normal",
	KindMatcap:   "matcap",
	KindDepth:    "depth",
	KindLambert:  "lambert",
	KindPhong:    "phong",
	KindToon:     "toon",
	KindPhysical: "physical",
}

// Kinds returns every kind in selector order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := KindStandard; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Label is the selector caption, e.g. "Standard".
func (k Kind) Label() string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether k names a known shading model.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// ParseKind resolves a kind by name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown material kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid material kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Side selects which triangle faces are drawn.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

var sideNames = [...]string{FrontSide: "front", BackSide: "back", DoubleSide: "double"}

// Sides returns the side modes in selector order.
func Sides() []Side { return []Side{FrontSide, BackSide, DoubleSide} }

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

func (s Side) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(sideNames) {
		return nil, fmt.Errorf("invalid side %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range sideNames {
		if n == name {
			*s = Side(i)
			return nil
		}
	}
	return fmt.Errorf("unknown side %q", name)
}
