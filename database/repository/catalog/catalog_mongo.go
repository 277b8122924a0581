package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"drepto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names read by MongoCatalog.
const (
	DoctorsCollection       = "doctors"
	LabTestsCollection      = "lab_tests"
	LabPackagesCollection   = "lab_packages"
	NurseServicesCollection = "nurse_services"
	AmbulanceCollection     = "ambulance_tiers"
	CitiesCollection        = "cities"
	ProductsCollection      = "products"
	AppointmentsCollection  = "appointments"
)

// MongoCatalog reads catalog documents from MongoDB. It never writes.
type MongoCatalog struct {
	db      *mongo.Database
	timeout time.Duration
}

// NewMongoCatalog creates a catalog backed by the given database.
func NewMongoCatalog(db *mongo.Database) *MongoCatalog {
	return &MongoCatalog{db: db, timeout: 5 * time.Second}
}

// findAll decodes every document of a collection ordered by id.
func findAll[T any](ctx context.Context, c *MongoCatalog, collection string) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}}).SetProjection(bson.M{"_id": 0})
	cursor, err := c.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collection, err)
	}
	return out, nil
}

func (c *MongoCatalog) Doctors(ctx context.Context) ([]models.Doctor, error) {
	return findAll[models.Doctor](ctx, c, DoctorsCollection)
}

func (c *MongoCatalog) LabTests(ctx context.Context) ([]models.LabTest, error) {
	return findAll[models.LabTest](ctx, c, LabTestsCollection)
}

func (c *MongoCatalog) LabPackages(ctx context.Context) ([]models.LabPackage, error) {
	return findAll[models.LabPackage](ctx, c, LabPackagesCollection)
}

func (c *MongoCatalog) NurseServices(ctx context.Context) ([]models.NurseService, error) {
	return findAll[models.NurseService](ctx, c, NurseServicesCollection)
}

func (c *MongoCatalog) AmbulanceTiers(ctx context.Context) ([]models.AmbulanceTier, error) {
	return findAll[models.AmbulanceTier](ctx, c, AmbulanceCollection)
}

func (c *MongoCatalog) Cities(ctx context.Context) ([]models.City, error) {
	return findAll[models.City](ctx, c, CitiesCollection)
}

func (c *MongoCatalog) Products(ctx context.Context) ([]models.Product, error) {
	return findAll[models.Product](ctx, c, ProductsCollection)
}

func (c *MongoCatalog) Appointments(ctx context.Context) ([]models.Appointment, error) {
	return findAll[models.Appointment](ctx, c, AppointmentsCollection)
}
