package usertype

import (
	"encoding/json"
	"fmt"
)

// UserType is the training archetype assigned to a profile.
type UserType string

const (
	Advantage UserType = "advantage"
	Potential UserType = "potential"
	Special   UserType = "special"
	Growth    UserType = "growth"
)

// All returns every user type in rule-cascade order.
func All() []UserType {
	return []UserType{Advantage, Potential, Special, Growth}
}

// Label returns the Chinese label used on the wire and in plan text.
func (t UserType) Label() string {
	switch t {
	case Advantage:
		return "优势倾向型"
	case Potential:
		return "潜能倾向型"
	case Special:
		return "专项优势型"
	case Growth:
		return "蓄力成长型"
	default:
		return string(t)
	}
}

// Parse accepts either the key ("advantage") or the Chinese label.
func Parse(s string) (UserType, bool) {
	for _, t := range All() {
		if s == string(t) || s == t.Label() {
			return t, true
		}
	}
	return "", false
}

func (t UserType) String() string { return t.Label() }

func (t UserType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Label())
}

func (t *UserType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, ok := Parse(s)
	if !ok {
		return fmt.Errorf("unknown user type %q", s)
	}
	*t = v
	return nil
}
