// Package store loads the category keyword rules used by the classifier.
// Rules live in a YAML file so they can be extended without a rebuild; when
// no file is found the built-in defaults apply.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"banksheets/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore resolves and loads the categories YAML file.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a store for the given categories file. An empty
// filename means "search the standard locations for categories.yaml".
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{CategoriesFile: categoriesFile}
}

// DefaultCategories returns the built-in rule set used when no YAML file is
// available. Expense rules are ordered; earlier rules win on conflict.
func DefaultCategories() models.CategoriesConfig {
	return models.CategoriesConfig{
		IncomeKeywords: []string{"salary", "wage", "deposit", "transfer in", "refund"},
		Expenses: []models.CategoryRule{
			{Name: "Grocery", Keywords: []string{"grocery", "supermarket", "food", "walmart", "target"}},
			{Name: "Gas", Keywords: []string{"gas", "fuel", "petrol", "shell", "bp", "chevron"}},
			{Name: "Utilities", Keywords: []string{"electric", "gas bill", "water", "internet", "phone"}},
			{Name: "Dining", Keywords: []string{"restaurant", "cafe", "pizza", "mcdonald", "starbucks"}},
			{Name: "Shopping", Keywords: []string{"amazon", "store", "retail", "purchase"}},
		},
	}
}

// LoadCategories loads the category configuration from the YAML file,
// falling back to the built-in defaults when the file cannot be found.
func (s *CategoryStore) LoadCategories() (models.CategoriesConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	path, err := s.findConfigFile(filename)
	if err != nil {
		if s.CategoriesFile == "" {
			// No file configured and none found: defaults are fine.
			return DefaultCategories(), nil
		}
		return models.CategoriesConfig{}, fmt.Errorf("categories file not found: %s", s.CategoriesFile)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path resolved from user configuration
	if err != nil {
		return models.CategoriesConfig{}, fmt.Errorf("error reading categories file: %w", err)
	}

	var config models.CategoriesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return models.CategoriesConfig{}, fmt.Errorf("error parsing categories file: %w", err)
	}

	// A file may override only one of the two sections.
	defaults := DefaultCategories()
	if config.IncomeKeywords == nil {
		config.IncomeKeywords = defaults.IncomeKeywords
	}
	if config.Expenses == nil {
		config.Expenses = defaults.Expenses
	}

	return config, nil
}

// findConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".banksheets", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}
