package booking

import (
	"math"
	"strings"
	"sync"
	"time"

	"drepto/models"

	"github.com/google/uuid"
)

// TaskFilter narrows the shift task list by status.
type TaskFilter string

const (
	TaskFilterAll       TaskFilter = "All"
	TaskFilterPending   TaskFilter = "Pending"
	TaskFilterCompleted TaskFilter = "Completed"
)

// TaskListView is the filtered task list with shift progress.
type TaskListView struct {
	Filter    TaskFilter         `json:"filter"`
	Items     []models.ShiftTask `json:"items"`
	Pending   int                `json:"pending"`
	Completed int                `json:"completed"`
	Total     int                `json:"total"`
	Progress  int                `json:"progress"` // percent completed, rounded
}

// TaskList is a nurse's daily task list. New tasks go on top.
type TaskList struct {
	mu     sync.Mutex
	tasks  []models.ShiftTask
	filter TaskFilter
	now    func() time.Time
}

func NewTaskList(now func() time.Time) *TaskList {
	if now == nil {
		now = time.Now
	}
	return &TaskList{filter: TaskFilterAll, now: now}
}

// ValidateTask checks the add-task form. Description and patient are required;
// priority defaults to Medium.
func ValidateTask(in models.NewShiftTask) (models.ShiftTask, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return models.ShiftTask{}, &FieldError{Field: "description", Message: "is required"}
	}
	patient := strings.TrimSpace(in.PatientName)
	if patient == "" {
		return models.ShiftTask{}, &FieldError{Field: "patientName", Message: "is required"}
	}
	priority := in.Priority
	switch priority {
	case "":
		priority = models.PriorityMedium
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
	default:
		return models.ShiftTask{}, &FieldError{Field: "priority", Message: "must be High, Medium or Low"}
	}
	return models.ShiftTask{Description: desc, PatientName: patient, Priority: priority}, nil
}

// Add validates the form and puts a pending task at the top of the list.
func (l *TaskList) Add(in models.NewShiftTask) (models.ShiftTask, error) {
	task, err := ValidateTask(in)
	if err != nil {
		return models.ShiftTask{}, err
	}
	task.ID = uuid.New().String()
	task.Status = models.TaskPending
	task.Time = l.now().Format("03:04 PM")

	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = append([]models.ShiftTask{task}, l.tasks...)
	return task, nil
}

// Toggle flips a task between Pending and Completed.
func (l *TaskList) Toggle(id string) (models.ShiftTask, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.tasks {
		if l.tasks[i].ID != id {
			continue
		}
		if l.tasks[i].Status == models.TaskPending {
			l.tasks[i].Status = models.TaskCompleted
		} else {
			l.tasks[i].Status = models.TaskPending
		}
		return l.tasks[i], nil
	}
	return models.ShiftTask{}, newFlowError(ErrEntityNotFound, "task %s not found", id)
}

func (l *TaskList) SetFilter(f TaskFilter) error {
	switch f {
	case TaskFilterAll, TaskFilterPending, TaskFilterCompleted:
	default:
		return newFlowError(ErrInvalidFilter, "unknown task filter %q", f)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter = f
	return nil
}

func (l *TaskList) View() TaskListView {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := TaskListView{Filter: l.filter, Items: make([]models.ShiftTask, 0, len(l.tasks)), Total: len(l.tasks)}
	for _, t := range l.tasks {
		if t.Status == models.TaskCompleted {
			v.Completed++
		} else {
			v.Pending++
		}
		if l.filter == TaskFilterAll || string(t.Status) == string(l.filter) {
			v.Items = append(v.Items, t)
		}
	}
	if v.Total > 0 {
		v.Progress = int(math.Round(float64(v.Completed) / float64(v.Total) * 100))
	}
	return v
}
