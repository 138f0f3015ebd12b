package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "STATIC_DIR",
		"LLM_PROVIDER", "LLM_MODEL", "LLM_TEMPERATURE",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "MAX_UPLOAD_SIZE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 0 {
		t.Errorf("WriteTimeout = %v, want 0", cfg.Server.WriteTimeout)
	}
	if cfg.Static.Dir != "./static/build" {
		t.Errorf("Static.Dir = %q", cfg.Static.Dir)
	}
	if cfg.LLM.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want openai", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gpt-3.5-turbo" {
		t.Errorf("Model = %q, want gpt-3.5-turbo", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.5 {
		t.Errorf("Temperature = %v, want 0.5", cfg.LLM.Temperature)
	}
	if cfg.LLM.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL = %q", cfg.LLM.BaseURL)
	}
	if cfg.Upload.MaxFileSize != 10485760 {
		t.Errorf("MaxFileSize = %d", cfg.Upload.MaxFileSize)
	}
}

func TestLoad_OpenAIOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("SERVER_WRITE_TIMEOUT", "2m")

	cfg := Load()

	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.2 {
		t.Errorf("Temperature = %v, want 0.2", cfg.LLM.Temperature)
	}
	if cfg.LLM.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("BaseURL = %q", cfg.LLM.BaseURL)
	}
	if cfg.Server.WriteTimeout != 2*time.Minute {
		t.Errorf("WriteTimeout = %v, want 2m", cfg.Server.WriteTimeout)
	}
}

func TestLoad_GeminiProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("GEMINI_BASE_URL", "")

	cfg := Load()

	if cfg.LLM.Provider != ProviderGemini {
		t.Errorf("Provider = %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q, want gemini-2.5-flash", cfg.LLM.Model)
	}
	if cfg.LLM.APIKey != "g-key" {
		t.Errorf("APIKey = %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty", cfg.LLM.BaseURL)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LLM_TEMPERATURE", "hot")
	t.Setenv("MAX_UPLOAD_SIZE", "big")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	if cfg.LLM.Temperature != 0.5 {
		t.Errorf("Temperature = %v, want 0.5", cfg.LLM.Temperature)
	}
	if cfg.Upload.MaxFileSize != 10485760 {
		t.Errorf("MaxFileSize = %d", cfg.Upload.MaxFileSize)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
}
