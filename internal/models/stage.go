package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type Stage int

const (
	Uninitialized Stage = iota
	Configured
	Scaffolded
	Built
	Bootstrapped
	Deployed
)

var stageNames = map[Stage]string{
	Uninitialized: "uninitialized",
	Configured:    "configured",
	Scaffolded:    "scaffolded",
	Built:         "built",
	Bootstrapped:  "bootstrapped",
	Deployed:      "deployed",
}

func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// CanAdvance reports whether next is reachable from s.
// Build and deploy are independent branches once the project is scaffolded,
// and nothing ever returns below Scaffolded.
func (s Stage) CanAdvance(next Stage) bool {
	switch next {
	case Configured:
		return s == Uninitialized || s == Configured
	case Scaffolded:
		return s == Configured
	case Built, Bootstrapped:
		return s >= Scaffolded
	case Deployed:
		return s == Bootstrapped
	default:
		return false
	}
}

func (s Stage) MarshalYAML() (any, error) {
	return s.String(), nil
}

func (s *Stage) UnmarshalYAML(node *yaml.Node) error {
	for k, v := range stageNames {
		if v == node.Value {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown stage %q", node.Value)
}
