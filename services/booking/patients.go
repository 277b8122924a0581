package booking

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"drepto/models"

	"github.com/google/uuid"
)

// DefaultPatientPageSize is the number of patients per register page.
const DefaultPatientPageSize = 6

// PatientView is one rendered page of the patient register.
type PatientView struct {
	Search     string           `json:"search"`
	Items      []models.Patient `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Total      int              `json:"total"`
}

// PatientRegister is a doctor's patient list. New patients go on top.
type PatientRegister struct {
	mu       sync.Mutex
	patients []models.Patient
	search   string
	page     int
	pageSize int
	now      func() time.Time
}

func NewPatientRegister(now func() time.Time) *PatientRegister {
	if now == nil {
		now = time.Now
	}
	return &PatientRegister{page: 1, pageSize: DefaultPatientPageSize, now: now}
}

// ValidatePatient checks the add-patient form. Name, age and condition are
// required; gender defaults to Male.
func ValidatePatient(in models.NewPatient) (models.Patient, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Patient{}, &FieldError{Field: "name", Message: "is required"}
	}
	ageText := strings.TrimSpace(in.Age)
	if ageText == "" {
		return models.Patient{}, &FieldError{Field: "age", Message: "is required"}
	}
	age, err := strconv.Atoi(ageText)
	if err != nil || age < 0 || age > 150 {
		return models.Patient{}, &FieldError{Field: "age", Message: "must be a whole number of years"}
	}
	gender := in.Gender
	switch gender {
	case "":
		gender = models.GenderMale
	case models.GenderMale, models.GenderFemale, models.GenderOther:
	default:
		return models.Patient{}, &FieldError{Field: "gender", Message: "must be Male, Female or Other"}
	}
	condition := strings.TrimSpace(in.Condition)
	if condition == "" {
		return models.Patient{}, &FieldError{Field: "condition", Message: "is required"}
	}
	return models.Patient{Name: name, Age: age, Gender: gender, Condition: condition}, nil
}

// Add validates the form and puts the patient at the top of the register.
// Nothing is inserted when a field is rejected.
func (r *PatientRegister) Add(in models.NewPatient) (models.Patient, error) {
	p, err := ValidatePatient(in)
	if err != nil {
		return models.Patient{}, err
	}
	p.ID = uuid.New().String()
	p.LastVisit = "Today"
	p.CreatedAt = r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.patients = append([]models.Patient{p}, r.patients...)
	return p, nil
}

// SetSearch filters by name or condition and returns to page 1.
func (r *PatientRegister) SetSearch(q string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.search = q
	r.page = 1
}

func (r *PatientRegister) SetPage(p int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.page = clampPage(p, pageCount(len(r.filtered()), r.pageSize))
}

func (r *PatientRegister) View() PatientView {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := r.filtered()
	total := len(filtered)
	pages := pageCount(total, r.pageSize)
	page := clampPage(r.page, pages)
	start := min((page-1)*r.pageSize, total)
	end := min(start+r.pageSize, total)
	return PatientView{
		Search:     r.search,
		Items:      filtered[start:end],
		Page:       page,
		TotalPages: pages,
		Total:      total,
	}
}

func (r *PatientRegister) filtered() []models.Patient {
	q := strings.ToLower(r.search)
	out := make([]models.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Condition), q) {
			out = append(out, p)
		}
	}
	return out
}
