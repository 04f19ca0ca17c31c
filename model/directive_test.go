package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectivesFromJSON(t *testing.T) {
	t.Run("not an array is fatal", func(t *testing.T) {
		_, err := DirectivesFromJSON(strings.NewReader(`{"labels": ["bug"]}`))
		require.Error(t, err)
	})

	t.Run("empty array is fatal", func(t *testing.T) {
		_, err := DirectivesFromJSON(strings.NewReader(`[]`))
		require.Error(t, err)
	})

	t.Run("all entries invalid is fatal", func(t *testing.T) {
		_, err := DirectivesFromJSON(strings.NewReader(`[42, "nope", {"labels": ["bug"]}]`))
		require.Error(t, err)
	})

	t.Run("invalid entries are dropped, order preserved", func(t *testing.T) {
		payload := `[
			{"column_id": 1, "labels": ["Bug"]},
			"not-an-object",
			{"column_id": 2},
			{"column_id": 3, "labels": ["Help Wanted"]}
		]`
		directives, err := DirectivesFromJSON(strings.NewReader(payload))
		require.NoError(t, err)
		require.Len(t, directives, 2)
		assert.Equal(t, int64(1), directives[0].ColumnID)
		assert.Equal(t, int64(3), directives[1].ColumnID)
	})

	t.Run("labels are filtered and lower-cased", func(t *testing.T) {
		payload := `[{"column_id": 7, "labels": ["Help Wanted", "", 5, null, "Bug"]}]`
		directives, err := DirectivesFromJSON(strings.NewReader(payload))
		require.NoError(t, err)
		require.Len(t, directives, 1)
		assert.Equal(t, []string{"help wanted", "bug"}, directives[0].Labels)
	})

	t.Run("entry with only invalid labels is dropped", func(t *testing.T) {
		payload := `[
			{"column_id": 7, "labels": ["", 5]},
			{"column_id": 8, "labels": ["bug"]}
		]`
		directives, err := DirectivesFromJSON(strings.NewReader(payload))
		require.NoError(t, err)
		require.Len(t, directives, 1)
		assert.Equal(t, int64(8), directives[0].ColumnID)
	})

	t.Run("column_id wins over the name pair", func(t *testing.T) {
		payload := `[{"column_id": 42, "column_name": "To Do", "project_name": "Roadmap", "labels": ["bug"]}]`
		directives, err := DirectivesFromJSON(strings.NewReader(payload))
		require.NoError(t, err)
		require.Len(t, directives, 1)
		assert.True(t, directives[0].ByColumnID())
		assert.Equal(t, int64(42), directives[0].ColumnID)
		assert.Empty(t, directives[0].ColumnName)
		assert.Empty(t, directives[0].ProjectName)
	})

	t.Run("numeric string column_id is coerced", func(t *testing.T) {
		payload := `[{"column_id": "42", "labels": ["bug"]}]`
		directives, err := DirectivesFromJSON(strings.NewReader(payload))
		require.NoError(t, err)
		require.Len(t, directives, 1)
		assert.Equal(t, int64(42), directives[0].ColumnID)
	})

	t.Run("bad column_id falls back to the name pair", func(t *testing.T) {
		payload := `[{"column_id": -1, "column_name": "To Do", "project_name": "Roadmap", "labels": ["bug"]}]`
		directives, err := DirectivesFromJSON(strings.NewReader(payload))
		require.NoError(t, err)
		require.Len(t, directives, 1)
		assert.False(t, directives[0].ByColumnID())
		assert.Equal(t, "To Do", directives[0].ColumnName)
		assert.Equal(t, "Roadmap", directives[0].ProjectName)
	})

	t.Run("name pair requires both fields", func(t *testing.T) {
		_, err := DirectivesFromJSON(strings.NewReader(`[{"column_name": "To Do", "labels": ["bug"]}]`))
		require.Error(t, err)
	})
}
