package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	config := DefaultCategories()

	assert.Contains(t, config.IncomeKeywords, "salary")
	assert.Contains(t, config.IncomeKeywords, "transfer in")

	require.Len(t, config.Expenses, 5)
	// Declaration order determines rule precedence.
	names := make([]string, len(config.Expenses))
	for i, rule := range config.Expenses {
		names[i] = rule.Name
	}
	assert.Equal(t, []string{"Grocery", "Gas", "Utilities", "Dining", "Shopping"}, names)
}

func TestLoadCategoriesNoFileUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	t.Setenv("HOME", tmpDir)

	config, err := NewCategoryStore("").LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, DefaultCategories(), config)
}

func TestLoadCategoriesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "categories.yaml")
	content := `income_keywords:
  - payroll
expenses:
  - name: Streaming
    keywords:
      - netflix
      - spotify
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := NewCategoryStore(path).LoadCategories()
	require.NoError(t, err)

	assert.Equal(t, []string{"payroll"}, config.IncomeKeywords)
	require.Len(t, config.Expenses, 1)
	assert.Equal(t, "Streaming", config.Expenses[0].Name)
	assert.Equal(t, []string{"netflix", "spotify"}, config.Expenses[0].Keywords)
}

func TestLoadCategoriesPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "categories.yaml")
	content := `income_keywords:
  - payroll
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := NewCategoryStore(path).LoadCategories()
	require.NoError(t, err)

	assert.Equal(t, []string{"payroll"}, config.IncomeKeywords)
	assert.Equal(t, DefaultCategories().Expenses, config.Expenses)
}

func TestLoadCategoriesMissingConfiguredFile(t *testing.T) {
	_, err := NewCategoryStore(filepath.Join(t.TempDir(), "absent.yaml")).LoadCategories()
	assert.Error(t, err)
}

func TestLoadCategoriesInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := NewCategoryStore(path).LoadCategories()
	assert.Error(t, err)
}
