package internal

import (
	"time"
)

type Config struct {
	BufferSize      int `env:"BUFFER_SIZE,default=64"`
	NumberOfWorkers int `env:"NUMBER_OF_WORKERS,default=4"`

	DiscordBotToken  string `env:"DISCORD_BOT_TOKEN,required=true"`
	DiscordPublicKey string `env:"DISCORD_PUBLIC_KEY,required=true"`
	DiscordAppID     string `env:"DISCORD_APP_ID,required=true"`
	HypixelAPIKey    string `env:"HYPIXEL_API_KEY,required=true"`

	DiscordAPIBase string `env:"DISCORD_API_BASE,default=https://discord.com/api/v10"`
	MojangBaseURL  string `env:"MOJANG_BASE_URL,default=https://api.mojang.com"`
	HypixelBaseURL string `env:"HYPIXEL_BASE_URL,default=https://api.hypixel.net"`

	LookupTimeout   time.Duration `env:"LOOKUP_TIMEOUT,default=10s"`
	NotifyTimeout   time.Duration `env:"NOTIFY_TIMEOUT,default=10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	LogLevel string `env:"LOG_LEVEL,default=INFO"`
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=8080"`
}
