package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusValid(t *testing.T) {
	assert.True(t, TaskStatusCreated.Valid())
	assert.True(t, TaskStatusInProgress.Valid())
	assert.True(t, TaskStatusCompleted.Valid())
	assert.False(t, TaskStatus("done").Valid())
	assert.False(t, TaskStatus("").Valid())
}

func TestValidPriority(t *testing.T) {
	for p := PriorityHighest; p <= PriorityLowest; p++ {
		assert.True(t, ValidPriority(p), "priority %d", p)
	}
	assert.False(t, ValidPriority(0))
	assert.False(t, ValidPriority(6))
}

func TestAideTypeValid(t *testing.T) {
	assert.True(t, AideTypeText.Valid())
	assert.True(t, AideTypeFile.Valid())
	assert.False(t, AideType("binary").Valid())
}

func TestNewDataEntry(t *testing.T) {
	e := NewDataEntry(7, "remember the milk")

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, int64(7), e.AideID)
	assert.Equal(t, "remember the milk", e.InputText)
	assert.Contains(t, e.CommandOutput, "remember the milk")
	assert.Contains(t, e.CommandOutput, "["+e.CreatedAt+"]")

	// Ids are unique per entry.
	assert.NotEqual(t, e.ID, NewDataEntry(7, "again").ID)
}
