package catalogRepo

import (
	"context"
	"slices"

	"drepto/models"
)

const allLocations = "Available in all locations"

// StaticCatalog serves catalog data held in memory. The zero value is an empty catalog.
type StaticCatalog struct {
	DoctorList       []models.Doctor
	LabTestList      []models.LabTest
	LabPackageList   []models.LabPackage
	NurseServiceList []models.NurseService
	AmbulanceList    []models.AmbulanceTier
	CityList         []models.City
	ProductList      []models.Product
	AppointmentList  []models.Appointment
}

// NewStaticCatalog returns the built-in seed catalog. Doctors, nurse services and
// pharmacy products ship empty until a content source populates them.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		LabTestList: []models.LabTest{
			{ID: 1, Name: "CBC Test", SampleType: "Blood", Preparation: "Fasting Required (8-12 hours)", Price: 499, Availability: allLocations, TurnaroundTime: "24 hours", Category: "Pathology"},
			{ID: 2, Name: "ESR Test", SampleType: "Blood", Preparation: "No special preparation", Price: 299, Availability: allLocations, TurnaroundTime: "24 hours", Category: "Pathology"},
			{ID: 3, Name: "Lipid Profile", SampleType: "Blood", Preparation: "Fasting Required (10-12 hours)", Price: 899, Availability: allLocations, TurnaroundTime: "24 hours", Category: "Biochemistry"},
			{ID: 4, Name: "Liver Function Test", SampleType: "Blood", Preparation: "Fasting Required (8-10 hours)", Price: 799, Availability: allLocations, TurnaroundTime: "24 hours", Category: "Biochemistry"},
			{ID: 5, Name: "HIV 1 & 2 Test", SampleType: "Blood", Preparation: "No special preparation", Price: 1299, Availability: allLocations, TurnaroundTime: "48-72 hours", Category: "Microbiology"},
		},
		LabPackageList: []models.LabPackage{
			{ID: 1, Name: "Full Body Checkup", Tests: []string{"CBC", "Lipid Profile", "Liver Function", "Kidney Function", "Thyroid", "Diabetes"}, Price: 1999, OriginalPrice: 3499, Discount: "43% off"},
			{ID: 2, Name: "Diabetes Package", Tests: []string{"Fasting Blood Sugar", "HbA1c", "Post Prandial Blood Sugar", "Urine Routine"}, Price: 1299, OriginalPrice: 1999, Discount: "35% off"},
			{ID: 3, Name: "Cardiac Package", Tests: []string{"Lipid Profile", "Cardiac Markers", "ECG", "Echocardiogram"}, Price: 3499, OriginalPrice: 4999, Discount: "30% off"},
		},
		AmbulanceList: []models.AmbulanceTier{
			{ID: "basic", Label: "Basic", Price: "₹50", Mode: models.AmbulanceRoad},
			{ID: "oxygen", Label: "Oxygen", Price: "₹80", Mode: models.AmbulanceRoad},
			{ID: "icu", Label: "ICU", Price: "₹150", Mode: models.AmbulanceRoad},
			{ID: "air", Label: "Air Ambulance", Price: "₹2500", Mode: models.AmbulanceAir},
		},
		CityList: []models.City{
			{ID: 1, Name: "Mumbai"},
			{ID: 2, Name: "Delhi"},
			{ID: 3, Name: "Bangalore"},
			{ID: 4, Name: "Hyderabad"},
			{ID: 5, Name: "Chennai"},
			{ID: 6, Name: "Kolkata"},
			{ID: 7, Name: "Pune"},
			{ID: 8, Name: "Ahmedabad"},
		},
	}
}

// Callers get copies so the seed can never be mutated through a listing.

func (s *StaticCatalog) Doctors(context.Context) ([]models.Doctor, error) {
	return slices.Clone(s.DoctorList), nil
}

func (s *StaticCatalog) LabTests(context.Context) ([]models.LabTest, error) {
	return slices.Clone(s.LabTestList), nil
}

func (s *StaticCatalog) LabPackages(context.Context) ([]models.LabPackage, error) {
	return slices.Clone(s.LabPackageList), nil
}

func (s *StaticCatalog) NurseServices(context.Context) ([]models.NurseService, error) {
	return slices.Clone(s.NurseServiceList), nil
}

func (s *StaticCatalog) AmbulanceTiers(context.Context) ([]models.AmbulanceTier, error) {
	return slices.Clone(s.AmbulanceList), nil
}

func (s *StaticCatalog) Cities(context.Context) ([]models.City, error) {
	return slices.Clone(s.CityList), nil
}

func (s *StaticCatalog) Products(context.Context) ([]models.Product, error) {
	return slices.Clone(s.ProductList), nil
}

func (s *StaticCatalog) Appointments(context.Context) ([]models.Appointment, error) {
	return slices.Clone(s.AppointmentList), nil
}
