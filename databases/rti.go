package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drishti-labs/police-admin-api/models"
)

const rtiName = "rti_requests"

// RTIDatabase contains the methods to use with the rti_requests collection
type RTIDatabase interface {
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.RTIRequest, error)
	Watch(context.Context, interface{}, ...*options.ChangeStreamOptions) (ChangeStreamHelper, error)
}

type rtiDatabase struct {
	db DatabaseHelper
}

// NewRTIDatabase initializes a new instance of RTI database with the provided db connection
func NewRTIDatabase(db DatabaseHelper) RTIDatabase {
	return &rtiDatabase{
		db: db,
	}
}

func (c *rtiDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.RTIRequest, error) {
	var requests []models.RTIRequest
	err := c.db.Collection(rtiName).Find(ctx, filter, opts...).Decode(&requests)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *rtiDatabase) Watch(ctx context.Context, pipeline interface{}, opts ...*options.ChangeStreamOptions) (ChangeStreamHelper, error) {
	return c.db.Collection(rtiName).Watch(ctx, pipeline, opts...)
}
