// Package catalog holds the review and tour data fed to the widgets and
// loads it from YAML.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Review is one testimonial. Reviews are never modified after loading.
type Review struct {
	Name  string `yaml:"name" json:"name"`
	Job   string `yaml:"job" json:"job"`
	Image string `yaml:"image" json:"image"`
	Text  string `yaml:"text" json:"text"`
}

// Tour is one tour card.
type Tour struct {
	ID    string `yaml:"id" json:"id"`
	Image string `yaml:"image" json:"image"`
	Info  string `yaml:"info" json:"info"`
	Price int    `yaml:"price" json:"price"`
	Name  string `yaml:"name" json:"name"`
}

// Catalog is the full input set for one session.
type Catalog struct {
	Reviews []Review `yaml:"reviews" json:"reviews"`
	Tours   []Tour   `yaml:"tours" json:"tours"`
}

//go:embed default.yaml
var defaultData []byte

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultData)
	if err != nil {
		// default.yaml ships with the binary; failing here is a build defect.
		panic(fmt.Sprintf("catalog: built-in data: %v", err))
	}
	return c
}

// Load reads a catalog from path. An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML, fills in missing tour ids and validates the result.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	c.assignIDs()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal encodes c as YAML.
func Marshal(c *Catalog) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}
	return data, nil
}

func (c *Catalog) assignIDs() {
	for i := range c.Tours {
		if strings.TrimSpace(c.Tours[i].ID) == "" {
			c.Tours[i].ID = uuid.New().String()
		}
	}
}

// ValidationError lists every problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid catalog: " + strings.Join(e.Problems, "; ")
}

// Validate checks tour ids are unique and prices are non-negative.
func (c *Catalog) Validate() error {
	var problems []string
	seen := make(map[string]int, len(c.Tours))
	for i, t := range c.Tours {
		if prev, ok := seen[t.ID]; ok {
			problems = append(problems, fmt.Sprintf("tour %d: duplicate id %q (first at %d)", i, t.ID, prev))
		} else {
			seen[t.ID] = i
		}
		if t.Price < 0 {
			problems = append(problems, fmt.Sprintf("tour %d: negative price %d", i, t.Price))
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
