package model

import (
	"encoding/json"
	"fmt"
)

// Criterion selects which global count an award compares against its value.
// The set of implementations is closed: ItemCount, CompletedCount and
// UnknownCriterion.
type Criterion interface {
	Tag() string
	criterion()
}

// ItemCount is met by the total number of items
type ItemCount struct{}

// CompletedCount is met by the number of completed items
type CompletedCount struct{}

// UnknownCriterion holds a tag this build does not know how to evaluate
type UnknownCriterion struct {
	Raw string
}

func (ItemCount) Tag() string          { return "items" }
func (CompletedCount) Tag() string     { return "complete" }
func (u UnknownCriterion) Tag() string { return u.Raw }

func (ItemCount) criterion()        {}
func (CompletedCount) criterion()   {}
func (UnknownCriterion) criterion() {}

// ParseCriterion maps a tag to its criterion. Unrecognized tags are kept as
// UnknownCriterion rather than rejected.
func ParseCriterion(tag string) Criterion {
	switch tag {
	case "items":
		return ItemCount{}
	case "complete":
		return CompletedCount{}
	default:
		return UnknownCriterion{Raw: tag}
	}
}

// Award is a static achievement definition
type Award struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Criterion   Criterion `json:"criterion"`
	Value       int       `json:"value"`
	Image       string    `json:"image"`
}

// awardJSON mirrors the bundled record shape
type awardJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Criterion   string `json:"criterion"`
	Value       *int   `json:"value"`
	Image       string `json:"image"`
}

// UnmarshalJSON decodes the bundled record shape, resolving the criterion tag
func (a *Award) UnmarshalJSON(data []byte) error {
	var raw awardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Value == nil {
		return fmt.Errorf("award %q: missing value", raw.Name)
	}

	*a = Award{
		Name:        raw.Name,
		Description: raw.Description,
		Color:       raw.Color,
		Criterion:   ParseCriterion(raw.Criterion),
		Value:       *raw.Value,
		Image:       raw.Image,
	}
	return nil
}

// MarshalJSON encodes the award back into the bundled record shape
func (a Award) MarshalJSON() ([]byte, error) {
	tag := ""
	if a.Criterion != nil {
		tag = a.Criterion.Tag()
	}
	value := a.Value
	return json.Marshal(awardJSON{
		Name:        a.Name,
		Description: a.Description,
		Color:       a.Color,
		Criterion:   tag,
		Value:       &value,
		Image:       a.Image,
	})
}
