package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drishti-labs/police-admin-api/models"
)

const citizenName = "citizens"

// CitizenDatabase contains the methods to use with the citizens collection.
// Citizen profiles are written by the bot; the dashboard only reads them.
type CitizenDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Citizen, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Citizen, error)
	Watch(context.Context, interface{}, ...*options.ChangeStreamOptions) (ChangeStreamHelper, error)
}

type citizenDatabase struct {
	db DatabaseHelper
}

// NewCitizenDatabase initializes a new instance of citizen database with the provided db connection
func NewCitizenDatabase(db DatabaseHelper) CitizenDatabase {
	return &citizenDatabase{
		db: db,
	}
}

func (c *citizenDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Citizen, error) {
	citizen := &models.Citizen{}
	err := c.db.Collection(citizenName).FindOne(ctx, filter, opts...).Decode(&citizen)
	if err != nil {
		return nil, err
	}
	return citizen, nil
}

func (c *citizenDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Citizen, error) {
	var citizens []models.Citizen
	err := c.db.Collection(citizenName).Find(ctx, filter, opts...).Decode(&citizens)
	if err != nil {
		return nil, err
	}
	return citizens, nil
}

func (c *citizenDatabase) Watch(ctx context.Context, pipeline interface{}, opts ...*options.ChangeStreamOptions) (ChangeStreamHelper, error) {
	return c.db.Collection(citizenName).Watch(ctx, pipeline, opts...)
}
