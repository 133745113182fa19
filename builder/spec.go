package builder

import (
	"github.com/bomcompare/bomgen/generator"
	"github.com/bomcompare/bomgen/schema"
)

// SequenceIncrements lists the accepted spacings between consecutive
// sequence numbers within one level.
var SequenceIncrements = []int{1, 10, 100, 1000, 10000}

func ValidIncrement(value int) bool {
	for _, candidate := range SequenceIncrements {
		if candidate == value {
			return true
		}
	}
	return false
}

// RandomConfig asks for generated rows instead of manual ones.
// Manufactured says how many of the generated rows get Source
// Manufactured to Job (F); the rest become Purchase to Job (J).
type RandomConfig struct {
	Count        int
	Fields       generator.Fields
	Manufactured int
}

// Group is a set of rows bound to one parent part at the level above,
// either generated or entered manually.
type Group struct {
	Parent string
	Random *RandomConfig
	Manual []*schema.Row
}

// LevelOne holds the Level 1 entries: generated when Random is set,
// otherwise the manual rows.
type LevelOne struct {
	Random *RandomConfig
	Manual []*schema.Row
}

// BuildSpec is the fully formed configuration tree for one BOM file:
// the top parent part, the Level 1 entries, and the Level 2/3 groups.
// PerParent configs generate rows under every manufactured part of the
// level above, in addition to the explicit groups.
type BuildSpec struct {
	Parent          *schema.Row
	Level1          LevelOne
	Level2PerParent *RandomConfig
	Level2Groups    []Group
	Level3PerParent *RandomConfig
	Level3Groups    []Group

	Increment     int
	ApplyRevision bool
	ApplyLocation bool
	LongPartNo    bool
}

func (it *BuildSpec) wantsLevel2() bool {
	return it.Level2PerParent != nil || len(it.Level2Groups) > 0
}

func (it *BuildSpec) wantsLevel3() bool {
	return it.Level3PerParent != nil || len(it.Level3Groups) > 0
}
