package client

import (
	"context"
	"time"

	"parkwise/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Client struct {
	Mongo *mongo.Client
}

func NewClient() *Client {
	return &Client{}
}

// SetMongo builds the Mongo client. A malformed URI is fatal; a failed ping
// only logs, since the driver keeps reconnecting in the background.
func (c *Client) SetMongo(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(mongoURI).
		SetConnectTimeout(mongoConnTimeout).
		SetServerSelectionTimeout(mongoConnTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatal("Failed to create MongoDB client", "error", err)
	}
	c.Mongo = client

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error("MongoDB is not reachable, continuing without a live connection", "error", err)
		return
	}
	log.Info("Successfully connected to MongoDB")
}

func (c *Client) GracefulShutdown(log *logger.Logger) {
	if c.Mongo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.Mongo.Disconnect(ctx); err != nil {
		log.Error("Failed to disconnect from MongoDB", "error", err)
		return
	}
	log.Info("Disconnected from MongoDB")
}
