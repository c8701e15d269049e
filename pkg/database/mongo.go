package database

import (
	"context"
	"fmt"
	"time"

	"gamerflow_service/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// NewMongoDB create a new MongoDB connection with retry
func NewMongoDB(ctx context.Context, c Connection, dbName string) (*MongoDB, error) {
	clientOpts := options.Client().ApplyURI(c.ConnectStr)

	var (
		client *mongo.Client
		err    error
	)

	for i := 0; i <= c.RetryCount; i++ {
		client, err = mongo.Connect(ctx, clientOpts)
		if err == nil {
			if err = client.Ping(ctx, readpref.Primary()); err == nil {
				logger.Log.Info("mongo connected", zap.String("database", dbName), zap.Int("attempt", i+1))
				return &MongoDB{
					Client:   client,
					Database: client.Database(dbName),
				}, nil
			}
		}

		logger.Log.Warn("Failed to connect to mongo, retrying...", zap.Int("attempt", i+1), zap.Error(err))
		if i < c.RetryCount {
			time.Sleep(c.RetryInterval * time.Second)
		}
	}

	return nil, fmt.Errorf("failed to connect to MongoDB after retries: %w", err)
}

// Close disconnect mongoDB
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
