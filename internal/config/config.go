package config

import (
	"errors"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ParamsConfig holds the generation backend settings.
type ParamsConfig struct {
	HFToken          string  `yaml:"hf_token"`
	Model            string  `yaml:"model"`
	BaseURL          string  `yaml:"base_url"`
	MaxAnswerTokens  int     `yaml:"max_answer_tokens"`
	MaxSummaryTokens int     `yaml:"max_summary_tokens"`
	Temperature      float32 `yaml:"temperature"`
	TimeoutSecs      int     `yaml:"timeout_secs"`
}

// InputConfig points at the resume document to load.
type InputConfig struct {
	CV string `yaml:"cv"`
}

// SplitterConfig selects the section header detection policy.
type SplitterConfig struct {
	Policy string `yaml:"policy"`
}

// IndexConfig configures the TF-IDF vectorizer.
type IndexConfig struct {
	MaxFeatures int `yaml:"max_features"`
}

// RetrievalConfig configures section retrieval.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// SummaryConfig configures the offline extractive summary fallback.
type SummaryConfig struct {
	MaxSentences int `yaml:"max_sentences"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Params    ParamsConfig    `yaml:"params"`
	Input     InputConfig     `yaml:"input"`
	Splitter  SplitterConfig  `yaml:"splitter"`
	Index     IndexConfig     `yaml:"index"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Summary   SummaryConfig   `yaml:"summary"`
}

var envPlaceholderRe = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads a config from the given path. ${NAME} placeholders are
// substituted from the environment before YAML parsing, so tokens can be
// kept out of the file itself. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	data = expandEnv(data)
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// expandEnv replaces every ${NAME} placeholder with the value of the NAME
// environment variable. Unset variables expand to the empty string.
func expandEnv(data []byte) []byte {
	return envPlaceholderRe.ReplaceAllFunc(data, func(m []byte) []byte {
		name := envPlaceholderRe.FindSubmatch(m)[1]
		return []byte(os.Getenv(string(name)))
	})
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Params.Model == "" {
		cfg.Params.Model = "meta-llama/Llama-3.2-3B-Instruct"
	}
	if cfg.Params.BaseURL == "" {
		cfg.Params.BaseURL = "https://router.huggingface.co/v1"
	}
	if cfg.Params.MaxAnswerTokens == 0 {
		cfg.Params.MaxAnswerTokens = 500
	}
	if cfg.Params.MaxSummaryTokens == 0 {
		cfg.Params.MaxSummaryTokens = 300
	}
	if cfg.Params.Temperature == 0 {
		cfg.Params.Temperature = 0.7
	}
	if cfg.Params.TimeoutSecs == 0 {
		cfg.Params.TimeoutSecs = 60
	}
	if cfg.Splitter.Policy == "" {
		cfg.Splitter.Policy = "catalog"
	}
	if cfg.Index.MaxFeatures == 0 {
		cfg.Index.MaxFeatures = 1000
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 3
	}
	if cfg.Summary.MaxSentences == 0 {
		cfg.Summary.MaxSentences = 4
	}
}
