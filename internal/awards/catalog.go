// Package awards loads the static award catalog and decides which awards the
// current store contents have earned.
package awards

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dori/portfolio/internal/model"
)

//go:embed awards.json
var bundled []byte

var (
	// ErrEmptyCatalog is returned when the catalog holds no awards
	ErrEmptyCatalog = errors.New("award catalog is empty")
	// ErrDuplicateAward is returned when two awards share a name
	ErrDuplicateAward = errors.New("duplicate award name")
)

// Catalog is the immutable, ordered list of awards
type Catalog struct {
	awards []model.Award
	byName map[string]int
}

// LoadEmbedded decodes the catalog bundled with the binary
func LoadEmbedded() (*Catalog, error) {
	return Load(bytes.NewReader(bundled))
}

// Load decodes and validates a JSON array of awards
func Load(r io.Reader) (*Catalog, error) {
	var awards []model.Award
	if err := json.NewDecoder(r).Decode(&awards); err != nil {
		return nil, fmt.Errorf("failed to decode award catalog: %w", err)
	}
	return NewCatalog(awards)
}

// NewCatalog validates awards and wraps them in a catalog
func NewCatalog(awards []model.Award) (*Catalog, error) {
	if len(awards) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		awards: make([]model.Award, len(awards)),
		byName: make(map[string]int, len(awards)),
	}
	copy(c.awards, awards)

	for i, a := range c.awards {
		if strings.TrimSpace(a.Name) == "" {
			return nil, fmt.Errorf("award %d: name is required", i)
		}
		if a.Criterion == nil {
			return nil, fmt.Errorf("award %q: criterion is required", a.Name)
		}
		if _, exists := c.byName[a.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAward, a.Name)
		}
		c.byName[a.Name] = i
	}

	return c, nil
}

// All returns a copy of the awards in catalog order
func (c *Catalog) All() []model.Award {
	out := make([]model.Award, len(c.awards))
	copy(out, c.awards)
	return out
}

// Len returns the number of awards
func (c *Catalog) Len() int {
	return len(c.awards)
}

// Get looks an award up by name
func (c *Catalog) Get(name string) (model.Award, bool) {
	i, ok := c.byName[name]
	if !ok {
		return model.Award{}, false
	}
	return c.awards[i], true
}
