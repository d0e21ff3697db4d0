package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	BotToken  string
	Channel   string // channel username, e.g. @arendnipro
	APIBase   string
	Port      int
	LogPath   string
	Keepalive KeepaliveConfig
	Promo     []PromoLink
}

type KeepaliveConfig struct {
	SelfURL string // liveness URL to self-ping; empty disables the pinger
	Cron    string
}

// PromoLink is one entry of the promotional line appended to every post.
type PromoLink struct {
	Emoji string `yaml:"emoji"`
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

const promoConfigPath = "config/promo.yaml"

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Channel:  getEnv("CHANNEL", "@arendnipro"),
		APIBase:  getEnv("API_BASE", "https://api.easybase.com.ua"),
		Port:     getEnvInt("PORT", 8080),
		LogPath:  getEnv("LOG_PATH", "bot.log"),
		Keepalive: KeepaliveConfig{
			SelfURL: os.Getenv("SELF_URL"),
			Cron:    getEnv("KEEPALIVE_CRON", "@every 10m"),
		},
	}

	if cfg.BotToken == "" {
		return nil, errors.New("BOT_TOKEN is required")
	}

	if err := cfg.loadPromoLinks(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadPromoLinks reads config/promo.yaml if present, otherwise keeps the
// built-in links.
func (c *Config) loadPromoLinks() error {
	c.Promo = defaultPromoLinks()

	data, err := os.ReadFile(promoConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var links []PromoLink
	if err := yaml.Unmarshal(data, &links); err != nil {
		return err
	}
	if len(links) > 0 {
		c.Promo = links
	}
	return nil
}

func defaultPromoLinks() []PromoLink {
	return []PromoLink{
		{Emoji: "📸", Title: "Мой Instagram", URL: "https://www.instagram.com/elenamelnik_rieltor"},
		{Emoji: "💬", Title: "Написать мне в ЛС", URL: "https://t.me/NYK_ELENA"},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
