package configuration

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"postpilot/infrastructure/logger"
)

type Config struct {
	App         App         `json:"app"`
	OAuth       OAuth       `json:"oauth"`
	Billing     Billing     `json:"billing"`
	RedisClient RedisClient `json:"redisClient"`
	Logger      Logger      `json:"logger"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
	// BaseURL is used to derive default OAuth redirect URIs when none is configured.
	BaseURL string `json:"baseURL"`
}

// OAuth holds third-party platform OAuth client credentials.
type OAuth struct {
	TikTok OAuthClient `json:"tiktok"`
	Google OAuthClient `json:"google"`
}

type OAuthClient struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectURI"`
}

// Billing holds the payment provider key and the static (tier, byok) → price table.
type Billing struct {
	StripeSecretKey string            `json:"stripeSecretKey"`
	Prices          map[string]string `json:"prices"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Logger struct {
	Format string `json:"format"`
}

var C Config

func init() {
	Load()
}

// Load reads the config file and applies env overrides. Called again after
// LoadEnvFromFile so file-provided env vars take effect.
func Load() {
	LoadConfig()
	initApp(&C)
	initOAuth(&C)
	initBilling(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			C.App.Port = port
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if v := os.Getenv("APP_BASE_URL"); v != "" {
		C.App.BaseURL = v
	}
	if C.App.BaseURL == "" {
		C.App.BaseURL = fmt.Sprintf("http://localhost:%d", C.App.Port)
	}
}

func initOAuth(C *Config) {
	C.OAuth.TikTok.ClientID = getConfigValue(C.OAuth.TikTok.ClientID, "TIKTOK_CLIENT_KEY", "")
	C.OAuth.TikTok.ClientSecret = getConfigValue(C.OAuth.TikTok.ClientSecret, "TIKTOK_CLIENT_SECRET", "")
	C.OAuth.TikTok.RedirectURI = getConfigValue(C.OAuth.TikTok.RedirectURI, "TIKTOK_REDIRECT_URI",
		fmt.Sprintf("%s/auth/tiktok/callback", C.App.BaseURL))

	C.OAuth.Google.ClientID = getConfigValue(C.OAuth.Google.ClientID, "GOOGLE_CLIENT_ID", "")
	C.OAuth.Google.ClientSecret = getConfigValue(C.OAuth.Google.ClientSecret, "GOOGLE_CLIENT_SECRET", "")
	C.OAuth.Google.RedirectURI = getConfigValue(C.OAuth.Google.RedirectURI, "GOOGLE_REDIRECT_URI",
		fmt.Sprintf("%s/auth/google-photos/callback", C.App.BaseURL))
}

func initBilling(C *Config) {
	C.Billing.StripeSecretKey = getConfigValue(C.Billing.StripeSecretKey, "STRIPE_SECRET_KEY", "")
	if C.Billing.Prices == nil {
		C.Billing.Prices = map[string]string{}
	}
	// Env overrides per price key, e.g. STRIPE_PRICE_STARTER, STRIPE_PRICE_STARTER_BYOK.
	for _, tier := range []string{"starter", "growth", "scale"} {
		envBase := fmt.Sprintf("STRIPE_PRICE_%s", strings.ToUpper(tier))
		if v := os.Getenv(envBase); v != "" {
			C.Billing.Prices[tier] = v
		}
		if v := os.Getenv(envBase + "_BYOK"); v != "" {
			C.Billing.Prices[tier+":byok"] = v
		}
	}
}

// getConfigValue gets value from environment first, then config, then default.
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configValue != "" {
		return configValue
	}
	return defaultValue
}
