package llm

import (
	"os"
	"strconv"
)

// TaskType identifies what the model is being asked to do.
type TaskType string

const (
	TaskAdvise   TaskType = "advise"
	TaskChat     TaskType = "chat"
	TaskDescribe TaskType = "describe"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the language-model collaborator.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns the defaults. The collaborator is disabled until
// HOUSEWRIGHT_LLM_ENABLED is set; every caller has a keyword fallback.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskAdvise:   {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 12000},
			TaskChat:     {Temperature: 0.4, MaxTokens: 768, TimeoutMs: 10000},
			TaskDescribe: {Temperature: 0.5, MaxTokens: 512, TimeoutMs: 8000},
		},
	}
}

// LoadConfig overlays HOUSEWRIGHT_LLM_* environment variables on the
// defaults. Malformed values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v, ok := lookupBool("HOUSEWRIGHT_LLM_ENABLED"); ok {
		cfg.Enabled = v
	}
	if v, ok := lookupBool("HOUSEWRIGHT_LLM_LOG_CALLS"); ok {
		cfg.LogCalls = v
	}
	if v := os.Getenv("HOUSEWRIGHT_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("HOUSEWRIGHT_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if n, ok := lookupInt("HOUSEWRIGHT_LLM_TIMEOUT_MS"); ok && n > 0 {
		cfg.TimeoutMs = n
	}
	if n, ok := lookupInt("HOUSEWRIGHT_LLM_MAX_RETRIES"); ok && n >= 0 {
		cfg.MaxRetries = n
	}

	cfg.overrideTaskTimeout(TaskAdvise, "HOUSEWRIGHT_LLM_ADVISE_TIMEOUT_MS")
	cfg.overrideTaskTimeout(TaskChat, "HOUSEWRIGHT_LLM_CHAT_TIMEOUT_MS")
	cfg.overrideTaskTimeout(TaskDescribe, "HOUSEWRIGHT_LLM_DESCRIBE_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the task-specific timeout if set, otherwise the
// global one.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func (c *Config) overrideTaskTimeout(task TaskType, env string) {
	n, ok := lookupInt(env)
	if !ok || n <= 0 {
		return
	}
	tc := c.Tasks[task]
	tc.TimeoutMs = n
	c.Tasks[task] = tc
}

func lookupBool(env string) (bool, bool) {
	v := os.Getenv(env)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	return b, err == nil
}

func lookupInt(env string) (int, bool) {
	v := os.Getenv(env)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}
