package catalogRepo

import (
	"context"
	"fmt"

	"drepto/models"
)

// CatalogRepository is the read-only data provider behind every listing screen.
type CatalogRepository interface {
	Doctors(ctx context.Context) ([]models.Doctor, error)
	LabTests(ctx context.Context) ([]models.LabTest, error)
	LabPackages(ctx context.Context) ([]models.LabPackage, error)
	NurseServices(ctx context.Context) ([]models.NurseService, error)
	AmbulanceTiers(ctx context.Context) ([]models.AmbulanceTier, error)
	Cities(ctx context.Context) ([]models.City, error)
	Products(ctx context.Context) ([]models.Product, error)
}

// AppointmentRepository lists the practitioner appointments shown on the board.
type AppointmentRepository interface {
	Appointments(ctx context.Context) ([]models.Appointment, error)
}

// Bookables projects the records of one kind onto the common bookable shape.
func Bookables(ctx context.Context, repo CatalogRepository, kind models.BookableKind) ([]models.Bookable, error) {
	var out []models.Bookable
	switch kind {
	case models.KindDoctor:
		docs, err := repo.Doctors(ctx)
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			out = append(out, d.Bookable())
		}
	case models.KindLabTest:
		tests, err := repo.LabTests(ctx)
		if err != nil {
			return nil, err
		}
		for _, t := range tests {
			out = append(out, t.Bookable())
		}
	case models.KindLabPackage:
		pkgs, err := repo.LabPackages(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range pkgs {
			out = append(out, p.Bookable())
		}
	case models.KindNurseService:
		svcs, err := repo.NurseServices(ctx)
		if err != nil {
			return nil, err
		}
		for _, s := range svcs {
			out = append(out, s.Bookable())
		}
	case models.KindAmbulance:
		tiers, err := repo.AmbulanceTiers(ctx)
		if err != nil {
			return nil, err
		}
		for _, a := range tiers {
			out = append(out, a.Bookable())
		}
	default:
		return nil, fmt.Errorf("unknown bookable kind %q", kind)
	}
	return out, nil
}

// FindBookable looks up one entity by id. The boolean is false when no entity matches.
func FindBookable(ctx context.Context, repo CatalogRepository, kind models.BookableKind, id string) (models.Bookable, bool, error) {
	all, err := Bookables(ctx, repo, kind)
	if err != nil {
		return models.Bookable{}, false, err
	}
	for _, b := range all {
		if b.ID == id {
			return b, true, nil
		}
	}
	return models.Bookable{}, false, nil
}
