package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	RemoveBg RemoveBgConfig `mapstructure:"removebg"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Export   ExportConfig   `mapstructure:"export"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type RemoveBgConfig struct {
	URL            string        `mapstructure:"url"`
	BackgroundPath string        `mapstructure:"background_path"`
	Timeout        time.Duration `mapstructure:"timeout"`

	// Loaded from the REMOVE_BG_API_KEY environment variable, never from
	// the config file.
	APIKey string `mapstructure:"-"`
}

type StorageConfig struct {
	UploadDir    string   `mapstructure:"upload_dir"`
	TempDir      string   `mapstructure:"temp_dir"`
	MaxSize      int64    `mapstructure:"max_size"`
	AllowedTypes []string `mapstructure:"allowed_types"`
}

type ExportConfig struct {
	LibraryDir string `mapstructure:"library_dir"`
	AlbumName  string `mapstructure:"album_name"`
}

// Load reads configuration from a YAML file, applying defaults for any
// missing keys
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.RemoveBg.APIKey = os.Getenv("REMOVE_BG_API_KEY")
	return &cfg, nil
}

// New loads config.yaml from the working directory, falling back to
// defaults when the file is absent
func New() *Config {
	cfg, err := Load("config.yaml")
	if err != nil {
		cfg = getDefaultConfig()
		cfg.RemoveBg.APIKey = os.Getenv("REMOVE_BG_API_KEY")
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)

	v.SetDefault("removebg.url", "https://api.remove.bg/v1.0/removebg")
	v.SetDefault("removebg.background_path", "./assets/background.jpg")
	v.SetDefault("removebg.timeout", 60*time.Second)

	v.SetDefault("storage.upload_dir", "./uploads")
	v.SetDefault("storage.temp_dir", "./tmp")
	v.SetDefault("storage.max_size", 10*1024*1024)
	v.SetDefault("storage.allowed_types", []string{"image/jpeg", "image/jpg", "image/png", "image/heic", "image/heif"})

	v.SetDefault("export.library_dir", "./library")
	v.SetDefault("export.album_name", "BilFotoAI")
}

func getDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			Mode:         "debug",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		RemoveBg: RemoveBgConfig{
			URL:            "https://api.remove.bg/v1.0/removebg",
			BackgroundPath: "./assets/background.jpg",
			Timeout:        60 * time.Second,
		},
		Storage: StorageConfig{
			UploadDir:    "./uploads",
			TempDir:      "./tmp",
			MaxSize:      10 * 1024 * 1024,
			AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/heic", "image/heif"},
		},
		Export: ExportConfig{
			LibraryDir: "./library",
			AlbumName:  "BilFotoAI",
		},
	}
}
