package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Server struct {
	Port              string `json:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

// Gemini configures the generative-text completion API.
type Gemini struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
}

// SET configures the passthrough to the SET marketplace realtime endpoint.
// The filter fields are forwarded verbatim as query parameters.
type SET struct {
	APIKey       string `json:"api_key"`
	Endpoint     string `json:"endpoint"`
	Market       string `json:"market"`
	IndexSector  string `json:"index_sector"`
	SecurityType string `json:"security_type"`
	StockSymbol  string `json:"stock_symbol"`
	OddLotFlag   string `json:"odd_lot_flag"`
}

type Chat struct {
	SystemInstruction string `json:"system_instruction"`
}

type Config struct {
	Server Server `json:"server"`
	Gemini Gemini `json:"gemini"`
	SET    SET    `json:"set"`
	Chat   Chat   `json:"chat"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8000", RequestTimeoutSec: 30},
		Gemini: Gemini{
			BaseURL: "https://generativelanguage.googleapis.com/v1beta",
			Model:   "gemini-2.0-flash",
		},
		SET: SET{
			Endpoint:     "https://marketplace.set.or.th/api/public/realtime-data/stock",
			Market:       "SET,mai",
			IndexSector:  "SET50,FINCIAL,BANK,INDUS-M",
			SecurityType: "CS,DWC,DWP",
			StockSymbol:  "PTT,AOT,EGCO",
			OddLotFlag:   "false",
		},
		Chat: Chat{
			SystemInstruction: "You are a financial assistant specializing in the Thai stock market.",
		},
	}
}

// Load reads JSON config from path, falling back to ./config.json and then
// to defaults. A .env file is honored if present, and environment variables
// override everything so the API keys never have to live in a file.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Server.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		cfg.Gemini.BaseURL = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("SET_API_KEY"); v != "" {
		cfg.SET.APIKey = v
	}
	if v := os.Getenv("SET_ENDPOINT"); v != "" {
		cfg.SET.Endpoint = v
	}
	if v := os.Getenv("SYSTEM_INSTRUCTION"); v != "" {
		cfg.Chat.SystemInstruction = v
	}
}
