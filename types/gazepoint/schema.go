package gazepoint

// Schema declares a point kind: its name and the enumerated set of
// attributes eligible for linear interpolation during denoising.
// Richer instrument variants (eg. SMI iView) are expressed as values
// of this type, selected at construction time, rather than subtypes.
// The x and y coordinates are always interpolatable, for every kind.
type Schema struct {
	Name   string
	Interp []string
}

// Base is the minimal point kind: position only.
var Base = &Schema{
	Name:   "base",
	Interp: []string{"x", "y"},
}

// IView is the SMI iView point kind. Beyond position, the instrument
// reports pupil and corneal-reflex measurements per sample, all of
// which interpolate the same way position does.
var IView = &Schema{
	Name: "iview",
	Interp: []string{
		"x", "y",
		"pupil_h", "pupil_v",
		"corneal_reflex_h", "corneal_reflex_v",
		"diam_h", "diam_v",
	},
}

// Declares reports whether name is an interpolatable attribute of the schema.
func (s *Schema) Declares(name string) bool {
	for _, n := range s.Interp {
		if n == name {
			return true
		}
	}
	return false
}
