package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Firm is the letterhead identity printed on every official document.
type Firm struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	Address  string `yaml:"address"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	Payee    string `yaml:"payee"`
	LogoPath string `yaml:"logoPath"`
}

// DefaultFirm is the profile used when no firm file exists.
func DefaultFirm() Firm {
	return Firm{
		Name:    "HAIRI MUSTAFA ASSOCIATES",
		Tagline: "Peguambela & Peguamcara | Pesuruhjaya Sumpah",
		Payee:   "HAIRI MUSTAFA ASSOCIATES",
	}
}

// LoadFirm reads the firm profile from a yaml file. A missing file is
// not an error: the built-in default profile is returned, so documents
// always carry a letterhead.
func LoadFirm(path string) (Firm, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultFirm(), nil
	}
	if err != nil {
		return Firm{}, fmt.Errorf("reading firm profile: %w", err)
	}
	firm := DefaultFirm()
	if err := yaml.Unmarshal(raw, &firm); err != nil {
		return Firm{}, fmt.Errorf("parsing firm profile %q: %w", path, err)
	}
	return firm, nil
}

// SaveFirm writes the firm profile as yaml.
func SaveFirm(path string, firm Firm) error {
	raw, err := yaml.Marshal(firm)
	if err != nil {
		return fmt.Errorf("encoding firm profile: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("writing firm profile: %w", err)
	}
	return nil
}
