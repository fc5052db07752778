package script

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/tasker/internal/yml"
	"github.com/viant/tasker/model"
	"gopkg.in/yaml.v3"
)

// ErrInvalidStep is returned for steps that do not hold exactly one known action
var ErrInvalidStep = errors.New("script: invalid step")

// Action names
const (
	ActionAdd       = "add"
	ActionKill      = "kill"
	ActionKillGroup = "killGroup"
	ActionKillAll   = "killAll"
	ActionList      = "list"
)

// Step represents a single manager operation
type Step struct {
	Action   string
	Process  model.Process
	PID      string
	Priority model.Priority
	SortedBy model.SortedBy
	Line     int
}

// Script represents an ordered list of steps
type Script struct {
	URL   string
	Steps []*Step
}

// Decode parses a YAML script
func Decode(data []byte) (*Script, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	root := (*yml.Node)(&doc).Root()
	steps := root.Lookup("steps")
	if steps == nil {
		return nil, fmt.Errorf("failed to decode script: steps were missing")
	}
	ret := &Script{}
	err := steps.Items(func(index int, node *yml.Node) error {
		step, err := decodeStep(node)
		if err != nil {
			return fmt.Errorf("step %d: %w", index, err)
		}
		ret.Steps = append(ret.Steps, step)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func decodeStep(node *yml.Node) (*Step, error) {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return nil, fmt.Errorf("%w: line %d: expected exactly one action", ErrInvalidStep, node.Line)
	}
	step := &Step{Line: node.Line}
	err := node.Pairs(func(key string, value *yml.Node) error {
		step.Action = key
		switch key {
		case ActionAdd:
			if err := value.Decode(&step.Process); err != nil {
				return err
			}
			return step.Process.Validate()
		case ActionKill:
			if err := value.Decode(&step.PID); err != nil {
				return err
			}
			if step.PID == "" {
				return fmt.Errorf("kill pid was empty")
			}
			return nil
		case ActionKillGroup:
			return value.Decode(&step.Priority)
		case ActionKillAll:
			var enabled bool
			if err := value.Decode(&enabled); err != nil {
				return err
			}
			if !enabled {
				return fmt.Errorf("killAll must be true")
			}
			return nil
		case ActionList:
			return value.Decode(&step.SortedBy)
		}
		return fmt.Errorf("unsupported action %q", key)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidStep, node.Line, err)
	}
	return step, nil
}

// Load loads a script from any afs supported location; plain paths are resolved as local files.
func Load(ctx context.Context, fs afs.Service, URL string) (*Script, error) {
	URL = url.Normalize(URL, file.Scheme)
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load script from %s: %w", URL, err)
	}
	ret, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	ret.URL = URL
	return ret, nil
}
