package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
type JWTConfig struct {
	SecretKey  string `yaml:"secret_key" env:"NOTES_JWT_SECRET_KEY" env-default:"change-me-secret-key-change-me-secret-key-change-me-secret-key"`
	TokenTTL   string `yaml:"token_ttl" env:"NOTES_JWT_TOKEN_TTL" env-default:"1h"`
	Issuer     string `yaml:"issuer" env:"NOTES_JWT_ISSUER" env-default:"demo-app"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"NOTES_JWT_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает продолжительность времени жизни токена.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return time.Hour
	}
	return duration
}
