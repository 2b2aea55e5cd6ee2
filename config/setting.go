package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type serverConfig struct {
	Port        int    `koanf:"port" validate:"required"`
	Mode        string `koanf:"mode" validate:"required"`
	Concurrency int    `koanf:"concurrency" validate:"required"`
	BodyLimit   int    `koanf:"body_limit" validate:"required"`
	AppName     string `koanf:"app_name" validate:"required"`
}

type logLevel string

const (
	Debug logLevel = "debug"
	Info  logLevel = "info"
	Warn  logLevel = "warn"
	Error logLevel = "error"
	Fatal logLevel = "fatal"
	Panic logLevel = "panic"
)

type Module string

const (
	ModuleServer    Module = "server"
	ModuleSetting   Module = "setting"
	ModuleChat      Module = "chat"
	ModuleCorpus    Module = "corpus"
	ModuleRetriever Module = "retriever"
	ModuleTranslate Module = "translate"
	ModuleSpeech    Module = "speech"
	ModuleOpenAI    Module = "openai"
	ModuleS3        Module = "s3"
)

type openaiConfig struct {
	Key         string  `koanf:"key"`
	Model       string  `koanf:"model" validate:"required"`
	Temperature float32 `koanf:"temperature"`
	MaxTokens   int     `koanf:"max_tokens" validate:"required"`
}

type translateConfig struct {
	Endpoint  string `koanf:"endpoint" validate:"required"`
	TimeoutMs int    `koanf:"timeout_ms" validate:"required"`
}

type speechConfig struct {
	SttURL      string `koanf:"stt_url" validate:"required"`
	SttToken    string `koanf:"stt_token"`
	TtsEndpoint string `koanf:"tts_endpoint" validate:"required"`
}

type s3Config struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Region    string `koanf:"region"`
	UseSSL    bool   `koanf:"use_ssl"`
	Bucket    string `koanf:"bucket"`
}

// LanguageConfig declares one user-facing language: where its corpus lives,
// which pivot language retrieval and generation run in, and the persona
// instructions prepended to every prompt.
type LanguageConfig struct {
	Code    string `koanf:"code" validate:"required"`
	Corpus  string `koanf:"corpus" validate:"required"`
	Pivot   string `koanf:"pivot" validate:"required"`
	Persona string `koanf:"persona" validate:"required"`
}

type config struct {
	Server    serverConfig     `koanf:"server"`
	OpenAI    openaiConfig     `koanf:"openai"`
	Translate translateConfig  `koanf:"translate"`
	Speech    speechConfig     `koanf:"speech"`
	S3        s3Config         `koanf:"s3"`
	Languages []LanguageConfig `koanf:"languages" validate:"required,dive"`
	LogLevel  logLevel         `koanf:"log_level"`
}

// Language returns the configuration for a language code, if declared.
func (c config) Language(code string) (LanguageConfig, bool) {
	for _, lang := range c.Languages {
		if lang.Code == code {
			return lang, true
		}
	}
	return LanguageConfig{}, false
}

var defaultConfig = config{
	Server: serverConfig{
		Port:        8000,
		Mode:        "release",
		Concurrency: 256,
		BodyLimit:   10 << 20,
		AppName:     "agribot",
	},
	OpenAI: openaiConfig{
		Key:         "",
		Model:       "gpt-3.5-turbo",
		Temperature: 0.2,
		MaxTokens:   512,
	},
	Translate: translateConfig{
		Endpoint:  "https://translate.googleapis.com/translate_a/single",
		TimeoutMs: 5000,
	},
	Speech: speechConfig{
		SttURL:      "https://api-inference.huggingface.co/models/openai/whisper-small",
		SttToken:    "",
		TtsEndpoint: "https://translate.google.com/translate_tts",
	},
	S3: s3Config{
		Endpoint:  "http://localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Region:    "us-east-1",
		UseSSL:    false,
		Bucket:    "corpora",
	},
	Languages: []LanguageConfig{
		{
			Code:   "en",
			Corpus: "docs/corpus_en.json",
			Pivot:  "en",
			Persona: "You are a helpful chatbot aimed to answer farmers' queries. " +
				"Provide as much detail as needed and primarily use the information given below.",
		},
		{
			Code:   "ur",
			Corpus: "docs/corpus_en.json",
			Pivot:  "en",
			Persona: "You are a helpful chatbot aimed to answer farmers' queries. " +
				"Provide as much detail as needed and primarily use the information given below.",
		},
	},
	LogLevel: Info,
}

var (
	Cfg  = defaultConfig
	once sync.Once
)

func init() {
	Init("config.yaml")
}

// Init loads configuration from the given yaml file plus APP_-prefixed
// environment variables, once per process.
func Init(path string) {
	once.Do(func() {
		k := koanf.New(".")

		validate := validator.New()
		// defaults
		Cfg = defaultConfig

		// file
		if e := k.Load(file.Provider(path), yaml.Parser()); e != nil && !os.IsNotExist(e) {
			return
		}

		// env APP_SERVER_PORT
		if e := k.Load(env.Provider("APP_", ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, "APP_"))
		}), nil); e != nil {
			return
		}

		// bind
		if e := k.Unmarshal("", &Cfg); e != nil {
			log.Errorf("failed to unmarshal config: %v", e)
		}

		// validate config
		if err := validate.Struct(Cfg); err != nil {
			if errs, ok := err.(validator.ValidationErrors); ok {
				var sb strings.Builder
				sb.WriteString(fmt.Sprintf("%v Config validation failed:\n", ModuleSetting))

				for _, e := range errs {
					sb.WriteString(
						fmt.Sprintf("  - %s: failed '%s' (value: %v)\n", e.Field(), e.Tag(), e.Value()),
					)
				}

				log.Error(sb.String())
			} else {
				log.Errorf("config validation failed: %v", err)
			}
		}
	})
}
