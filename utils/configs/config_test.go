package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTestConfig(t *testing.T) {
	config, err := LoadTestConfig("../../")
	require.NoError(t, err)

	assert.Equal(t, "development", config.ENV)
	assert.Equal(t, 10, config.MaxPoolSize)
	assert.Equal(t, "vietqr_test", config.MongoDB)
	assert.Equal(t, "vietqr-decoded", config.KafkaConfig.TopicDecoded)
	assert.Equal(t, []string{"26", "27", "38", "62"}, config.ContainerTags)
	assert.True(t, config.VerifyCRC)
}

func TestLoadTestConfig_Missing(t *testing.T) {
	_, err := LoadTestConfig(t.TempDir())
	assert.Error(t, err)
}
