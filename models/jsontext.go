// models/jsontext.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings persisted as a JSON text column
// (equipment, focus tags). An empty or NULL column decodes to an empty list,
// and an empty list marshals to [] in responses, never null.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	*l = StringList{}
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, l)
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Phase is one timed segment of a practice plan.
type Phase struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"` // minutes
	Type     string `json:"type"`     // warmup | drill | scrimmage | cooldown
	Drills   []uint `json:"drills"`   // drill ids run during this phase
}

// PhaseList is the ordered phase plan of a practice, persisted as a JSON text
// column. Round-trips content and order exactly.
type PhaseList []Phase

func (p PhaseList) Value() (driver.Value, error) {
	if p == nil {
		p = PhaseList{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *PhaseList) Scan(value interface{}) error {
	*p = PhaseList{}
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into PhaseList", value)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, p)
}

func (p PhaseList) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Phase(p))
}
