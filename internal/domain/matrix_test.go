package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "grademill.dev/pkg/grademill/internal/model"
)

func TestReconcile_AlignsWithExpectedOrder(t *testing.T) {
	expected := []m.ExpectedTest{
		{ClassName: "PublicTests", MethodName: "a"},
		{ClassName: "PublicTests", MethodName: "b"},
	}

	runA := m.TestRun{MethodName: "a", ClassName: "PublicTests", Status: m.StatusSuccess}

	matrix, err := Reconcile(expected, []m.TestRun{runA})
	require.NoError(t, err)
	require.Len(t, matrix, len(expected))

	assert.Equal(t, runA, matrix[0])
	assert.True(t, matrix[1].IsPlaceholder(), "missing expected test must yield a placeholder, not a hole")
}

func TestReconcile_MatchRequiresClassAndMethod(t *testing.T) {
	expected := []m.ExpectedTest{{ClassName: "HiddenTests", MethodName: "a"}}
	candidates := []m.TestRun{{MethodName: "a", ClassName: "PublicTests", Status: m.StatusSuccess}}

	matrix, err := Reconcile(expected, candidates)
	require.NoError(t, err)

	assert.True(t, matrix[0].IsPlaceholder())
}

func TestReconcile_PreservesDeclaredOrder(t *testing.T) {
	expected := []m.ExpectedTest{
		{ClassName: "PublicTests", MethodName: "c"},
		{ClassName: "PublicTests", MethodName: "a"},
	}

	candidates := []m.TestRun{
		{MethodName: "a", ClassName: "PublicTests", Status: m.StatusSuccess},
		{MethodName: "c", ClassName: "PublicTests", Status: m.StatusFailure},
	}

	matrix, err := Reconcile(expected, candidates)
	require.NoError(t, err)

	assert.Equal(t, "c", matrix[0].MethodName)
	assert.Equal(t, "a", matrix[1].MethodName)
}

func TestReconcile_EmptyExpectedListIsMisconfiguration(t *testing.T) {
	_, err := Reconcile(nil, []m.TestRun{{MethodName: "a", ClassName: "PublicTests"}})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrNoExpectedTests)
}
