package templates

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/mindstep/aiplan/internal/usertype"
)

// Template is the fixed prose attached to a plan for one user type.
type Template struct {
	Overview              string   `yaml:"overview" json:"overview"`
	TrainingPlanIntro     string   `yaml:"training_plan_intro" json:"training_plan_intro"`
	HomeAdvice            []string `yaml:"home_advice" json:"home_advice"`
	TrackingAndAdjustment []string `yaml:"tracking_and_adjustment" json:"tracking_and_adjustment"`
}

// Table maps user types to their templates. It is read-only once built.
type Table struct {
	entries map[usertype.UserType]Template
}

// Lookup returns a copy of the template for t. Unknown types get the
// potential entry.
func (tb *Table) Lookup(t usertype.UserType) Template {
	tpl, ok := tb.entries[t]
	if !ok {
		tpl = tb.entries[usertype.Potential]
	}
	tpl.HomeAdvice = slices.Clone(tpl.HomeAdvice)
	tpl.TrackingAndAdjustment = slices.Clone(tpl.TrackingAndAdjustment)
	return tpl
}

// LoadFile overlays a YAML file on the defaults. Top-level keys are user
// type keys or labels; fields left empty keep the default text.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return Parse(data)
}

// Parse overlays YAML data on the defaults.
func Parse(data []byte) (*Table, error) {
	var raw map[string]Template
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	tb := Default()
	for key, over := range raw {
		t, ok := usertype.Parse(key)
		if !ok {
			return nil, fmt.Errorf("unknown user type %q in templates", key)
		}
		base := tb.entries[t]
		if over.Overview != "" {
			base.Overview = over.Overview
		}
		if over.TrainingPlanIntro != "" {
			base.TrainingPlanIntro = over.TrainingPlanIntro
		}
		if len(over.HomeAdvice) > 0 {
			base.HomeAdvice = over.HomeAdvice
		}
		if len(over.TrackingAndAdjustment) > 0 {
			base.TrackingAndAdjustment = over.TrackingAndAdjustment
		}
		tb.entries[t] = base
	}
	return tb, nil
}
