package models

import (
	"strconv"

	"drepto/utils"
)

// Doctor is a consultable physician.
type Doctor struct {
	ID        int     `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Specialty string  `bson:"specialty" json:"specialty"`
	Rating    float64 `bson:"rating" json:"rating"`
	Reviews   int     `bson:"reviews" json:"reviews"`
	Image     string  `bson:"image" json:"image"`
	Available string  `bson:"available" json:"available"` // "Today" or "Tomorrow"
}

// LabTest is a single diagnostic test.
type LabTest struct {
	ID             int    `bson:"id" json:"id"`
	Name           string `bson:"name" json:"name"`
	SampleType     string `bson:"sampleType" json:"sampleType"`
	Preparation    string `bson:"preparation" json:"preparation"`
	Price          int    `bson:"price" json:"price"`
	Availability   string `bson:"availability" json:"availability"`
	TurnaroundTime string `bson:"turnaroundTime" json:"turnaroundTime"`
	Category       string `bson:"category,omitempty" json:"category,omitempty"`
	Description    string `bson:"description,omitempty" json:"description,omitempty"`
}

// LabPackage bundles several tests at a discount.
type LabPackage struct {
	ID            int      `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Tests         []string `bson:"tests" json:"tests"`
	Price         int      `bson:"price" json:"price"`
	OriginalPrice int      `bson:"originalPrice" json:"originalPrice"`
	Discount      string   `bson:"discount" json:"discount"`
}

// NurseService is a home-care visit type.
type NurseService struct {
	ID       int    `bson:"id" json:"id"`
	Title    string `bson:"title" json:"title"`
	Category string `bson:"category" json:"category"` // "Home Care", "Specialty" or "Follow-up"
	Price    string `bson:"price" json:"price"`       // display price, e.g. "₹499"
	Duration string `bson:"duration" json:"duration"`
}

// City is a serviceable location.
type City struct {
	ID   int    `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Product is a pharmacy catalog entry.
type Product struct {
	ID    int    `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Price string `bson:"price" json:"price"`
	Image string `bson:"image" json:"image"`
}

// AsCartItem converts a product into a cart line.
func (p Product) AsCartItem() CartItem {
	return CartItem{ID: NumericID(int64(p.ID)), Name: p.Name, Price: p.Price, Image: p.Image}
}

func (d Doctor) Bookable() Bookable {
	return Bookable{
		ID:           strconv.Itoa(d.ID),
		Kind:         KindDoctor,
		Name:         d.Name,
		Category:     d.Specialty,
		Rating:       d.Rating,
		Availability: d.Available,
		Payload:      d,
	}
}

func (t LabTest) Bookable() Bookable {
	return Bookable{
		ID:           strconv.Itoa(t.ID),
		Kind:         KindLabTest,
		Name:         t.Name,
		Price:        float64(t.Price),
		Category:     t.Category,
		Availability: t.Availability,
		Payload:      t,
	}
}

func (p LabPackage) Bookable() Bookable {
	return Bookable{
		ID:      strconv.Itoa(p.ID),
		Kind:    KindLabPackage,
		Name:    p.Name,
		Price:   float64(p.Price),
		Payload: p,
	}
}

func (s NurseService) Bookable() Bookable {
	price, _ := utils.ParsePrice(s.Price)
	return Bookable{
		ID:       strconv.Itoa(s.ID),
		Kind:     KindNurseService,
		Name:     s.Title,
		Price:    price,
		Category: s.Category,
		Payload:  s,
	}
}

func (a AmbulanceTier) Bookable() Bookable {
	price, _ := utils.ParsePrice(a.Price)
	return Bookable{
		ID:       a.ID,
		Kind:     KindAmbulance,
		Name:     a.Label,
		Price:    price,
		Category: string(a.Mode),
		Payload:  a,
	}
}
