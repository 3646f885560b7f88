package mongo

import (
	"fluency-srv/internal/report/repository"
	"fluency-srv/pkg/log"

	"go.mongodb.org/mongo-driver/mongo"
)

const reportCollection = "reports"

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

func New(db *mongo.Database, l log.Logger) repository.MongoRepository {
	return &implRepository{
		coll: db.Collection(reportCollection),
		l:    l,
	}
}
