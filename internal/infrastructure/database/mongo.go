package database

import (
	"context"
	"fmt"

	"medical-appointment-api/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoConnection struct {
	client *mongo.Client
	log    *logrus.Logger
}

func NewMongoConnection(ctx context.Context, cfg config.DBConfig, log *logrus.Logger) (*MongoConnection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.WithField("database", cfg.Name).Info("MongoDB client created")

	return &MongoConnection{
		client: client,
		log:    log,
	}, nil
}

func (c *MongoConnection) Driver() string {
	return config.DBDriverMongo
}

func (c *MongoConnection) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *MongoConnection) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from database: %w", err)
	}
	c.log.Info("MongoDB connection closed")
	return nil
}
