// Package catalog holds the read-only studio package catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed packages.yaml
var packagesYAML []byte

var displayPriceRegex = regexp.MustCompile(`^€[1-9][0-9,.]*$`)

// Package is a single bookable studio package.
type Package struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	Subtitle      string   `yaml:"subtitle"`
	Price         string   `yaml:"price"`
	OriginalPrice string   `yaml:"original_price,omitempty"`
	Description   string   `yaml:"description"`
	Features      []string `yaml:"features"`
	Note          string   `yaml:"note,omitempty"`
	WhoFor        string   `yaml:"who_for,omitempty"`
	Badge         string   `yaml:"badge,omitempty"`
}

// Label is the "{title} - {subtitle}" form used in outbound email.
func (p Package) Label() string {
	return fmt.Sprintf("%s - %s", p.Title, p.Subtitle)
}

// Catalog is an ordered, validated set of packages.
type Catalog struct {
	packages []Package
	byID     map[string]Package
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return parse(packagesYAML)
}

func parse(data []byte) (*Catalog, error) {
	var doc struct {
		Packages []Package `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing package catalog: %w", err)
	}
	if len(doc.Packages) == 0 {
		return nil, fmt.Errorf("package catalog is empty")
	}

	byID := make(map[string]Package, len(doc.Packages))
	for _, pkg := range doc.Packages {
		if strings.TrimSpace(pkg.ID) == "" {
			return nil, fmt.Errorf("package %q is missing an id", pkg.Title)
		}
		if _, exists := byID[pkg.ID]; exists {
			return nil, fmt.Errorf("duplicate package id %q", pkg.ID)
		}
		if !displayPriceRegex.MatchString(pkg.Price) {
			return nil, fmt.Errorf("package %q has invalid price %q", pkg.ID, pkg.Price)
		}
		byID[pkg.ID] = pkg
	}

	return &Catalog{packages: doc.Packages, byID: byID}, nil
}

// All returns the packages in catalog order.
func (c *Catalog) All() []Package {
	return c.packages
}

// ByID looks up a package by identifier.
func (c *Catalog) ByID(id string) (Package, bool) {
	pkg, ok := c.byID[id]
	return pkg, ok
}
