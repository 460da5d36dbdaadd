package fracture

import "fmt"

// CrackType selects the geometry-correction formula family and its
// calibrated validity window.
type CrackType int

const (
	Edge CrackType = iota
	DoubleEdge
	Through
	EllipticalSurface
	Corner
)

var crackTypeNames = map[CrackType]string{
	Edge:              "edge",
	DoubleEdge:        "double_edge",
	Through:           "through",
	EllipticalSurface: "elliptical_surface",
	Corner:            "corner",
}

func (t CrackType) String() string {
	if name, ok := crackTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("crack_type(%d)", int(t))
}

// ParseCrackType maps a config/CLI name to a CrackType.
func ParseCrackType(name string) (CrackType, error) {
	for t, n := range crackTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCrackType, name)
}

// CrackTypes lists all supported types in declaration order.
func CrackTypes() []CrackType {
	return []CrackType{Edge, DoubleEdge, Through, EllipticalSurface, Corner}
}

// Orientation positions the crack plane relative to the loaded section.
type Orientation int

const (
	Axial Orientation = iota
	Circumferential
	Radial
)

var orientationNames = map[Orientation]string{
	Axial:           "axial",
	Circumferential: "circumferential",
	Radial:          "radial",
}

func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// ParseOrientation maps a config/CLI name to an Orientation.
func ParseOrientation(name string) (Orientation, error) {
	for o, n := range orientationNames {
		if n == name {
			return o, nil
		}
	}
	return 0, &InputError{Field: "crack_orientation", Reason: fmt.Sprintf("unknown orientation %q", name)}
}

// CrackSpecification is the immutable geometry record. Construct it with
// NewCrackSpecification; a value obtained any other way is not validated.
type CrackSpecification struct {
	crackType      CrackType
	orientation    Orientation
	a              float64 // crack depth or half-length, mm
	w              float64 // ligament or section width, mm
	c              float64 // semi-width for elliptical/corner types, mm
	locationRadius float64 // rotor-disk location radius, mm
}

// NewCrackSpecification validates structure and the calibrated geometry
// window for the crack type, returning an error before any numeric work
// if either check fails.
func NewCrackSpecification(t CrackType, o Orientation, a, w, c, locationRadius float64) (*CrackSpecification, error) {
	if _, ok := crackTypeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCrackType, int(t))
	}
	if _, ok := orientationNames[o]; !ok {
		return nil, &InputError{Field: "crack_orientation", Value: float64(o), Reason: "not in allowed set"}
	}
	if a <= 0 {
		return nil, &InputError{Field: "a", Value: a, Reason: "crack size must be positive"}
	}
	if w <= 0 {
		return nil, &InputError{Field: "W", Value: w, Reason: "section width must be positive"}
	}
	if locationRadius < 0 {
		return nil, &InputError{Field: "crack_location_radius_mm", Value: locationRadius, Reason: "must be non-negative"}
	}

	window := DomainFor(t)
	if window.NeedsAspect {
		if c <= 0 {
			return nil, &InputError{Field: "c", Value: c, Reason: "semi-width must be positive for " + t.String()}
		}
	}

	spec := &CrackSpecification{
		crackType:      t,
		orientation:    o,
		a:              a,
		w:              w,
		c:              c,
		locationRadius: locationRadius,
	}
	if err := window.Check(spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *CrackSpecification) Type() CrackType          { return s.crackType }
func (s *CrackSpecification) Orientation() Orientation { return s.orientation }

// A returns the crack depth (or half-length for through cracks) in mm.
func (s *CrackSpecification) A() float64 { return s.a }

// W returns the ligament or section width in mm.
func (s *CrackSpecification) W() float64 { return s.w }

// C returns the crack semi-width in mm. Zero for types without one.
func (s *CrackSpecification) C() float64 { return s.c }

// LocationRadius returns the rotor-disk location radius in mm.
// Meaningful only for rotor geometries.
func (s *CrackSpecification) LocationRadius() float64 { return s.locationRadius }

// RatioAW returns a/W.
func (s *CrackSpecification) RatioAW() float64 { return s.a / s.w }

// AspectRatio returns a/c, or 0 when the type has no semi-width.
func (s *CrackSpecification) AspectRatio() float64 {
	if s.c == 0 {
		return 0
	}
	return s.a / s.c
}

// WithCrackSize returns a copy of the spec at a different crack size,
// bypassing the window check. The growth integrator uses this to probe
// Y(a) along the growth path; the ceiling it integrates to stays inside
// the calibrated window by construction.
func (s *CrackSpecification) WithCrackSize(a float64) *CrackSpecification {
	clone := *s
	clone.a = a
	return &clone
}

func (s *CrackSpecification) String() string {
	if s.c > 0 {
		return fmt.Sprintf("%s crack a=%.3gmm c=%.3gmm W=%.3gmm (%s)",
			s.crackType, s.a, s.c, s.w, s.orientation)
	}
	return fmt.Sprintf("%s crack a=%.3gmm W=%.3gmm (%s)", s.crackType, s.a, s.w, s.orientation)
}
