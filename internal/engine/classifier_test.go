package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySubjectsSingleMatch(t *testing.T) {
	subjects := ClassifySubjects(
		[]string{"Master AP Calculus AB for 5 on exam"},
		[]string{"Calculus"},
		nil,
	)
	require.Equal(t, []string{"AP Calculus AB"}, subjects)
}

func TestClassifySubjectsDefaultFallback(t *testing.T) {
	subjects := ClassifySubjects([]string{"do well on tests"}, nil, nil)
	require.Equal(t, defaultSubjects, subjects)

	subjects = ClassifySubjects(nil, nil, nil)
	require.Equal(t, defaultSubjects, subjects)
}

func TestClassifySubjectsCapAtFour(t *testing.T) {
	subjects := ClassifySubjects(
		[]string{"calculus biology chemistry physics statistics history"},
		nil, nil,
	)
	require.Len(t, subjects, maxSubjects)
	// Truncation keeps keyword-table order, not input order.
	assert.Equal(t, []string{"AP Calculus AB", "AP Biology", "AP Chemistry", "AP Physics 1"}, subjects)
}

func TestClassifySubjectsDeduplicates(t *testing.T) {
	subjects := ClassifySubjects(
		[]string{"calculus"},
		[]string{"calc", "derivatives"},
		[]string{"integrals"},
	)
	require.Equal(t, []string{"AP Calculus AB"}, subjects)
}

func TestClassifySubjectsTableOrderIndependentOfInputOrder(t *testing.T) {
	a := ClassifySubjects([]string{"biology and calculus"}, nil, nil)
	b := ClassifySubjects([]string{"calculus and biology"}, nil, nil)
	require.Equal(t, a, b)
	assert.Equal(t, []string{"AP Calculus AB", "AP Biology"}, a)
}
