package automate

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/screenpilot/screenpilot-cli/internal/classify"
	"github.com/screenpilot/screenpilot-cli/internal/motion"
)

// Script is an ordered sequence of interaction requests, typically loaded
// from a YAML file for the run command.
type Script struct {
	Steps []Request
}

type scriptDoc struct {
	Steps []stepDoc `yaml:"steps"`
}

type stepDoc struct {
	Kind       string   `yaml:"kind"`
	Target     *int     `yaml:"target"`
	Text       string   `yaml:"text"`
	DurationMs int      `yaml:"durationMs"`
	ScrollTop  float64  `yaml:"scrollTop"`
	ScrollLeft float64  `yaml:"scrollLeft"`
	Value      string   `yaml:"value"`
	DropTarget *int     `yaml:"dropTarget"`
	DropX      *float64 `yaml:"dropX"`
	DropY      *float64 `yaml:"dropY"`
}

// LoadScript parses a YAML interaction script.
func LoadScript(r io.Reader) (*Script, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("automate: reading script: %w", err)
	}
	var doc scriptDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("automate: parsing script: %w", err)
	}

	s := &Script{}
	for i, step := range doc.Steps {
		if step.Kind == "" {
			return nil, fmt.Errorf("automate: step %d has no kind", i+1)
		}
		req := Request{
			TargetID:   step.Target,
			Kind:       classify.Interaction(step.Kind),
			Text:       step.Text,
			Duration:   time.Duration(step.DurationMs) * time.Millisecond,
			ScrollTop:  step.ScrollTop,
			ScrollLeft: step.ScrollLeft,
			Value:      step.Value,
		}
		if step.DropTarget != nil {
			req.DropTargetID = step.DropTarget
		} else if step.DropX != nil && step.DropY != nil {
			req.DropTo = &motion.Vector2D{X: *step.DropX, Y: *step.DropY}
		}
		s.Steps = append(s.Steps, req)
	}
	return s, nil
}

// LoadScriptFile is a convenience wrapper around LoadScript.
func LoadScriptFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("automate: opening script: %w", err)
	}
	defer f.Close()
	return LoadScript(f)
}
