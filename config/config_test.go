package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("RENVARE_SERVER_PORT")
		os.Unsetenv("RENVARE_SERVER_ENVIRONMENT")
		os.Unsetenv("RENVARE_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("RENVARE_KASSAL_API_TOKEN")
		os.Unsetenv("RENVARE_KASSAL_BASE_URL")
		os.Unsetenv("RENVARE_CACHE_TYPE")
		os.Unsetenv("RENVARE_CACHE_REDIS_URL")
		os.Unsetenv("RENVARE_CACHE_TTL")
		os.Unsetenv("RENVARE_RATELIMIT_PER_IP")
		os.Unsetenv("RENVARE_RATELIMIT_KASSAL")
		os.Unsetenv("RENVARE_CLASSIFY_MAX_BATCH_SIZE")
		os.Unsetenv("RENVARE_CLASSIFY_MAX_INGREDIENTS_LEN")
		os.Unsetenv("RENVARE_CLASSIFY_DEBUG")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Kassal.BaseURL != "https://kassal.app" {
			t.Errorf("Kassal.BaseURL = %s, want https://kassal.app", cfg.Kassal.BaseURL)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Kassal != 60 {
			t.Errorf("RateLimit.Kassal = %d, want 60", cfg.RateLimit.Kassal)
		}
		if cfg.Classify.MaxBatchSize != 100 {
			t.Errorf("Classify.MaxBatchSize = %d, want 100", cfg.Classify.MaxBatchSize)
		}
		if cfg.Classify.MaxIngredientsLen != 5000 {
			t.Errorf("Classify.MaxIngredientsLen = %d, want 5000", cfg.Classify.MaxIngredientsLen)
		}
		if cfg.Classify.Debug {
			t.Error("Classify.Debug = true, want false")
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("RENVARE_SERVER_PORT", "9090")
		os.Setenv("RENVARE_SERVER_ENVIRONMENT", "production")
		os.Setenv("RENVARE_KASSAL_API_TOKEN", "custom-token")
		os.Setenv("RENVARE_KASSAL_BASE_URL", "https://staging.kassal.app")
		os.Setenv("RENVARE_CACHE_TYPE", "redis")
		os.Setenv("RENVARE_CACHE_REDIS_URL", "redis://localhost:6379")
		os.Setenv("RENVARE_CACHE_TTL", "1h")
		os.Setenv("RENVARE_RATELIMIT_PER_IP", "200")
		os.Setenv("RENVARE_RATELIMIT_KASSAL", "30")
		os.Setenv("RENVARE_CLASSIFY_MAX_BATCH_SIZE", "50")
		os.Setenv("RENVARE_CLASSIFY_DEBUG", "true")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Kassal.APIToken != "custom-token" {
			t.Errorf("Kassal.APIToken = %s, want custom-token", cfg.Kassal.APIToken)
		}
		if cfg.Kassal.BaseURL != "https://staging.kassal.app" {
			t.Errorf("Kassal.BaseURL = %s, want https://staging.kassal.app", cfg.Kassal.BaseURL)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisURL != "redis://localhost:6379" {
			t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379", cfg.Cache.RedisURL)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Kassal != 30 {
			t.Errorf("RateLimit.Kassal = %d, want 30", cfg.RateLimit.Kassal)
		}
		if cfg.Classify.MaxBatchSize != 50 {
			t.Errorf("Classify.MaxBatchSize = %d, want 50", cfg.Classify.MaxBatchSize)
		}
		if !cfg.Classify.Debug {
			t.Error("Classify.Debug = false, want true")
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("RENVARE_CACHE_TYPE", "invalid")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails validation when redis URL missing for redis cache", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("RENVARE_CACHE_TYPE", "redis")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing Redis URL")
		}
	})

	t.Run("fails validation for non-positive batch size", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("RENVARE_CLASSIFY_MAX_BATCH_SIZE", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero batch size")
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("returns nil when .env file doesn't exist", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)
		os.Chdir(t.TempDir())

		if err := loadEnvFile(); err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil when file doesn't exist", err)
		}
	})

	t.Run("loads variables, skipping comments and blanks", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)
		os.Chdir(t.TempDir())

		envContent := `
# Comment line
TEST_RENVARE_1=value1

   # Indented comment
TEST_RENVARE_2=value2
# TEST_RENVARE_COMMENTED=should_not_load
`
		if err := os.WriteFile(".env", []byte(envContent), 0644); err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		os.Unsetenv("TEST_RENVARE_1")
		os.Unsetenv("TEST_RENVARE_2")
		os.Unsetenv("TEST_RENVARE_COMMENTED")
		defer func() {
			os.Unsetenv("TEST_RENVARE_1")
			os.Unsetenv("TEST_RENVARE_2")
		}()

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_RENVARE_1") != "value1" {
			t.Errorf("TEST_RENVARE_1 = %s, want value1", os.Getenv("TEST_RENVARE_1"))
		}
		if os.Getenv("TEST_RENVARE_2") != "value2" {
			t.Errorf("TEST_RENVARE_2 = %s, want value2", os.Getenv("TEST_RENVARE_2"))
		}
		if os.Getenv("TEST_RENVARE_COMMENTED") != "" {
			t.Error("TEST_RENVARE_COMMENTED should not be loaded from comment")
		}
	})

	t.Run("doesn't override existing environment variables", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)
		os.Chdir(t.TempDir())

		os.Setenv("TEST_RENVARE_OVERRIDE", "existing-value")
		defer os.Unsetenv("TEST_RENVARE_OVERRIDE")

		if err := os.WriteFile(".env", []byte("TEST_RENVARE_OVERRIDE=new-value"), 0644); err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_RENVARE_OVERRIDE") != "existing-value" {
			t.Errorf("TEST_RENVARE_OVERRIDE = %s, want existing-value (should not override)", os.Getenv("TEST_RENVARE_OVERRIDE"))
		}
	})
}

func TestValidate(t *testing.T) {
	validConfig := func() *Config {
		return &Config{
			Cache: CacheConfig{Type: "memory"},
			RateLimit: RateLimitConfig{
				PerIP:  100,
				Kassal: 60,
			},
			Classify: ClassifyConfig{
				MaxBatchSize:      100,
				MaxIngredientsLen: 5000,
			},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(validConfig()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("validates redis cache type with URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.Cache.Type = "redis"
		cfg.Cache.RedisURL = "redis://localhost:6379"

		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil for valid redis config", err)
		}
	})

	t.Run("fails for invalid cache type", func(t *testing.T) {
		cfg := validConfig()
		cfg.Cache.Type = "invalid-type"

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails for redis cache without URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.Cache.Type = "redis"

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for redis without URL")
		}
	})

	t.Run("fails for non-positive ingredients length", func(t *testing.T) {
		cfg := validConfig()
		cfg.Classify.MaxIngredientsLen = 0

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero ingredients length")
		}
	})

	t.Run("fails for non-positive per-IP rate limit", func(t *testing.T) {
		cfg := validConfig()
		cfg.RateLimit.PerIP = -1

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative rate limit")
		}
	})
}
