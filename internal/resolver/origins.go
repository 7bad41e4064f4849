package resolver

import (
	"github.com/pimmuno/protectconf/configtree"
	"github.com/pimmuno/protectconf/models"
)

// Origins classifies every leaf of a merged document by comparing it with
// the defaults and user documents it was produced from: values only the
// defaults define are "default", values only the user introduced are
// "user", and values where the user replaced a default are "override".
//
// The classification drives provenance badges in the TUI and the --origin
// flag of the get command.
func Origins(defaults, user, merged *configtree.Tree) models.OriginSet {
	set := make(models.OriginSet)
	_ = merged.Walk(func(path []string, _ configtree.Scalar) error {
		key := configtree.JoinPath(path)
		if _, inUser := user.Lookup(path...); !inUser {
			set[key] = models.OriginDefault
			return nil
		}
		if _, inDefaults := defaults.Lookup(path...); inDefaults {
			set[key] = models.OriginOverride
		} else {
			set[key] = models.OriginUser
		}
		return nil
	})
	return set
}
