package catalogRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var catalogCollections = []string{
	DoctorsCollection,
	LabTestsCollection,
	LabPackagesCollection,
	NurseServicesCollection,
	AmbulanceCollection,
	CitiesCollection,
	ProductsCollection,
	AppointmentsCollection,
}

// EnsureIndexes creates the unique id index every catalog lookup sorts and matches on.
func (c *MongoCatalog) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*c.timeout)
	defer cancel()

	idIndex := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	for _, name := range catalogCollections {
		if _, err := c.db.Collection(name).Indexes().CreateOne(ctx, idIndex); err != nil {
			return fmt.Errorf("failed to create id index on %s: %w", name, err)
		}
	}
	return nil
}
