package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client enveloppe la connexion MongoDB de la base médicale
// (médecins, spécialisations, comptes utilisateurs des médecins).
// Cette base est en lecture seule depuis ce backend : les fiches
// navette ne stockent que des ids de médecins.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// Noms des collections de la base médicale
const (
	CollectionDoctors         = "doctors"
	CollectionSpecializations = "specializations"
	CollectionUsers           = "users"
)

func NewClient(config *MongoConfig) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.URI)

	clientOptions.SetMaxPoolSize(50)
	clientOptions.SetMinPoolSize(2)
	clientOptions.SetMaxConnIdleTime(30 * time.Minute)
	clientOptions.SetConnectTimeout(10 * time.Second)
	clientOptions.SetServerSelectionTimeout(5 * time.Second)
	clientOptions.SetRetryReads(true)

	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	client := &Client{
		client:   mongoClient,
		database: mongoClient.Database(config.Database),
	}

	if err := client.Ping(ctx); err != nil {
		client.Close(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("MongoDB client is nil")
	}

	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	return nil
}

func (c *Client) Close(ctx context.Context) error {
	if c.client != nil {
		return c.client.Disconnect(ctx)
	}
	return nil
}

func (c *Client) Database() *mongo.Database {
	return c.database
}

func (c *Client) Doctors() *mongo.Collection {
	return c.database.Collection(CollectionDoctors)
}

func (c *Client) Specializations() *mongo.Collection {
	return c.database.Collection(CollectionSpecializations)
}

func (c *Client) Users() *mongo.Collection {
	return c.database.Collection(CollectionUsers)
}

// EnsureIndexes crée les index nécessaires aux fan-out par lots
// (recherche des médecins par paquet d'ids, tri par spécialisation)
func (c *Client) EnsureIndexes(ctx context.Context) error {
	doctorIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "specialization_id", Value: 1}}},
	}

	if _, err := c.Doctors().Indexes().CreateMany(ctx, doctorIndexes); err != nil {
		return fmt.Errorf("failed to create doctor indexes: %w", err)
	}

	return nil
}
