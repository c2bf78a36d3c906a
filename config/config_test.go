package config

import (
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3ConfigBindsFromEnvironment(t *testing.T) {
	t.Setenv("EXTERNAL_S3_ACCESS_KEY", "test-access-key")
	t.Setenv("EXTERNAL_S3_SECRET_KEY", "test-secret-key")
	t.Setenv("EXTERNAL_S3_REGION", "us-east-1")
	t.Setenv("EXTERNAL_S3_API_ENDPOINT", "https://s3.example.com")
	t.Setenv("EXTERNAL_S3_PUBLIC_DOMAIN", "https://cdn.example.com")
	t.Setenv("EXTERNAL_S3_BUCKET_NAME", "test-bucket")

	var cfg Config
	require.NoError(t, envconfig.Process("", &cfg))

	assert.Equal(t, "test-access-key", cfg.External.S3.AccessKey)
	assert.Equal(t, "test-secret-key", cfg.External.S3.SecretKey)
	assert.Equal(t, "us-east-1", cfg.External.S3.Region)
	assert.Equal(t, "https://s3.example.com", cfg.External.S3.APIEndpoint)
	assert.Equal(t, "https://cdn.example.com", cfg.External.S3.PublicDomain)
	assert.Equal(t, "test-bucket", cfg.External.S3.BucketName)
}

func TestKafkaConfigBindsFromEnvironment(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("KAFKA_CONSUMER_GROUP", "inn-notifications")

	var cfg Config
	require.NoError(t, envconfig.Process("", &cfg))

	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "inn-notifications", cfg.Kafka.ConsumerGroup)
}
