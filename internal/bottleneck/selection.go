package bottleneck

import (
	"fmt"

	"github.com/restartfu/bottleneck/internal/catalog"
)

// Selection is the CPU and GPU picked in one session. The zero value has
// nothing selected. It is owned by the presentation layer and never stored.
type Selection struct {
	CPU string
	GPU string
}

// Complete reports whether both sides are selected.
func (s Selection) Complete() bool {
	return s.CPU != "" && s.GPU != ""
}

// Select sets the model for class after checking it exists in scores.
// An empty name clears that side.
func (s *Selection) Select(scores Scorer, class catalog.Class, name string) error {
	if name != "" {
		if _, err := scores.Score(class, name); err != nil {
			return err
		}
	}
	switch class {
	case catalog.CPUs:
		s.CPU = name
	case catalog.GPUs:
		s.GPU = name
	default:
		return fmt.Errorf("%w: %q", catalog.ErrUnknownClass, class)
	}
	return nil
}

// Reset clears both sides.
func (s *Selection) Reset() {
	*s = Selection{}
}
