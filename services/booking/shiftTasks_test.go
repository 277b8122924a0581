package booking

import (
	"testing"

	"drepto/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTask(t *testing.T) {
	task, err := ValidateTask(models.NewShiftTask{Description: " Administer insulin ", PatientName: "John Doe"})
	require.NoError(t, err)
	assert.Equal(t, "Administer insulin", task.Description)
	assert.Equal(t, models.PriorityMedium, task.Priority)

	var fe *FieldError
	_, err = ValidateTask(models.NewShiftTask{Description: "x"})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "patientName", fe.Field)

	_, err = ValidateTask(models.NewShiftTask{Description: "x", PatientName: "y", Priority: "Urgent"})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "priority", fe.Field)
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestTaskListToggleFilterAndProgress(t *testing.T) {
	l := NewTaskList(fixedNow)
	assert.Zero(t, l.View().Progress)

	_, err := l.Add(models.NewShiftTask{Description: "", PatientName: "A"})
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Zero(t, l.View().Total)

	var ids []string
	for _, d := range []string{"Check vitals", "Change dressing", "Insulin"} {
		task, err := l.Add(models.NewShiftTask{Description: d, PatientName: "John Doe", Priority: models.PriorityHigh})
		require.NoError(t, err)
		assert.Equal(t, models.TaskPending, task.Status)
		assert.Equal(t, testNow.Format("03:04 PM"), task.Time)
		ids = append(ids, task.ID)
	}
	assert.Equal(t, "Insulin", l.View().Items[0].Description)

	done, err := l.Toggle(ids[0])
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, done.Status)

	v := l.View()
	assert.Equal(t, 1, v.Completed)
	assert.Equal(t, 2, v.Pending)
	assert.Equal(t, 33, v.Progress)

	require.NoError(t, l.SetFilter(TaskFilterCompleted))
	v = l.View()
	require.Len(t, v.Items, 1)
	assert.Equal(t, "Check vitals", v.Items[0].Description)

	_, err = l.Toggle(ids[0])
	require.NoError(t, err)
	assert.Empty(t, l.View().Items)

	assert.ErrorIs(t, l.SetFilter("Overdue"), ErrInvalidFilter)
	_, err = l.Toggle("missing")
	assert.ErrorIs(t, err, ErrEntityNotFound)
}
