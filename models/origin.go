package models

// Origin classifies where one leaf of a resolved configuration came from.
type Origin string

const (
	// OriginDefault marks a value taken unchanged from the shipped
	// defaults.
	OriginDefault Origin = "default"

	// OriginUser marks a value the user document introduced at a path the
	// defaults do not define (most notably everything under `patients`).
	OriginUser Origin = "user"

	// OriginOverride marks a value where the user document replaced an
	// existing default.
	OriginOverride Origin = "override"
)

// OriginSet maps dotted leaf paths of a resolved document to their origin.
type OriginSet map[string]Origin

// Counts tallies the set by origin, in the fixed order default, user,
// override. Used for run summaries.
func (s OriginSet) Counts() (defaults, user, overrides int) {
	for _, o := range s {
		switch o {
		case OriginUser:
			user++
		case OriginOverride:
			overrides++
		default:
			defaults++
		}
	}
	return defaults, user, overrides
}
