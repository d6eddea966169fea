package warning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactlint/internal/ast"
	"tactlint/internal/warning"
)

func TestNewAssignsUniqueID(t *testing.T) {
	a := warning.New("cell overflow", warning.High, warning.CategorySecurity, ast.Span{})
	b := warning.New("cell overflow", warning.High, warning.CategorySecurity, ast.Span{})
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSortBySeverityDescendingIsStable(t *testing.T) {
	ws := []warning.Warning{
		warning.New("a", warning.Low, warning.CategoryBestPractices, ast.Span{}),
		warning.New("b", warning.Critical, warning.CategorySecurity, ast.Span{}),
		warning.New("c", warning.Critical, warning.CategorySecurity, ast.Span{}),
		warning.New("d", warning.Medium, warning.CategoryPerformance, ast.Span{}),
	}
	warning.SortBySeverityDescending(ws)

	require.Len(t, ws, 4)
	assert.Equal(t, "b", ws[0].Title)
	assert.Equal(t, "c", ws[1].Title)
	assert.Equal(t, "d", ws[2].Title)
	assert.Equal(t, "a", ws[3].Title)
}

func TestDedupKeepsFirstOccurrenceOnly(t *testing.T) {
	w1 := warning.New("dup", warning.High, warning.CategorySecurity, ast.Span{})
	w2 := w1
	w2.ID = "different-id-but-otherwise-identical"

	out := warning.Dedup([]warning.Warning{w1, w2})
	require.Len(t, out, 1)
	assert.Equal(t, w1.ID, out[0].ID)
}
