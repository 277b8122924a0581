package booking

import (
	"fmt"
	"testing"

	"drepto/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePatient(t *testing.T) {
	valid := models.NewPatient{Name: " Asha Rao ", Age: "34", Condition: "Hypertension"}
	p, err := ValidatePatient(valid)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", p.Name)
	assert.Equal(t, 34, p.Age)
	assert.Equal(t, models.GenderMale, p.Gender)

	cases := map[string]models.NewPatient{
		"name":      {Name: "  ", Age: "34", Condition: "x"},
		"age":       {Name: "A", Age: "thirty", Condition: "x"},
		"gender":    {Name: "A", Age: "34", Gender: "Unknown", Condition: "x"},
		"condition": {Name: "A", Age: "34", Condition: ""},
	}
	for field, in := range cases {
		_, err := ValidatePatient(in)
		require.ErrorIs(t, err, ErrInvalidField, field)
		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, field, fe.Field)
	}
}

func TestPatientRegisterRejectsWithoutInsert(t *testing.T) {
	r := NewPatientRegister(fixedNow)
	_, err := r.Add(models.NewPatient{Name: "A", Age: "-3", Condition: "Flu"})
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Zero(t, r.View().Total)
}

func TestPatientRegisterNewestFirstAndPaged(t *testing.T) {
	r := NewPatientRegister(fixedNow)
	for i := 1; i <= 8; i++ {
		cond := "Asthma"
		if i%2 == 0 {
			cond = "Diabetes"
		}
		_, err := r.Add(models.NewPatient{Name: fmt.Sprintf("Patient %d", i), Age: "40", Gender: models.GenderFemale, Condition: cond})
		require.NoError(t, err)
	}

	v := r.View()
	assert.Equal(t, 8, v.Total)
	assert.Equal(t, 2, v.TotalPages)
	require.Len(t, v.Items, DefaultPatientPageSize)
	assert.Equal(t, "Patient 8", v.Items[0].Name)
	assert.Equal(t, "Today", v.Items[0].LastVisit)
	assert.Equal(t, testNow, v.Items[0].CreatedAt)

	r.SetPage(2)
	assert.Len(t, r.View().Items, 2)

	// Search covers the condition too and resets the page.
	r.SetSearch("DIAB")
	v = r.View()
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 4, v.Total)

	r.SetSearch("patient 3")
	v = r.View()
	require.Len(t, v.Items, 1)
	assert.Equal(t, "Asthma", v.Items[0].Condition)
}
