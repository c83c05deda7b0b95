package testutil

import (
	"fmt"
	"os"
	"testing"
)

const (
	EnvServerURL = "TEST_SERVER_URL"
	EnvMongoURI  = "TEST_MONGO_URI"
	EnvDBName    = "TEST_DB_NAME"
)

type TestEnv struct {
	MongoURI     string
	DatabaseName string
	ServerURL    string
}

// NewTestEnv reads the suite settings. Without TEST_SERVER_URL there is no
// running service to talk to and the calling test is skipped.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	serverURL := os.Getenv(EnvServerURL)
	if serverURL == "" {
		t.Skip(fmt.Sprintf("%s not set, skipping integration tests", EnvServerURL))
	}

	return &TestEnv{
		MongoURI:     getEnv(EnvMongoURI, DefaultMongoURI),
		DatabaseName: getEnv(EnvDBName, DefaultDatabaseName),
		ServerURL:    serverURL,
	}
}

func (e *TestEnv) Setup(t *testing.T) (*MongoHelper, *Client) {
	t.Helper()

	mongo := NewMongoHelper(t, e.MongoURI, e.DatabaseName)
	mongo.CleanDatabase(t)

	client := NewClient(e.ServerURL)
	client.WaitForHealthy(t, DefaultHealthCheckTimeout)

	return mongo, client
}

func (e *TestEnv) Cleanup(t *testing.T, mongo *MongoHelper) {
	t.Helper()

	if mongo != nil {
		mongo.CleanDatabase(t)
		mongo.Close(t)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

const (
	DefaultHealthCheckTimeout = 3 * ConnectionTimeout
)
