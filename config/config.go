package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Upload  UploadConfig  `yaml:"upload"`
	CORS    CORSConfig    `yaml:"cors"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type MongoConfig struct {
	// URI and DBName may be left empty here and supplied via the MONGO_URI
	// and MONGO_DB environment variables instead.
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

type UploadConfig struct {
	// Dir is where uploaded blog images are stored, relative to the base path.
	Dir string `yaml:"dir"`

	// MaxSizeMB caps a single uploaded image. 0 or less means the default 5.
	MaxSizeMB int `yaml:"max_size_mb"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = "uploads"
	}
	if c.Upload.MaxSizeMB <= 0 {
		c.Upload.MaxSizeMB = 5
	}
	if c.Mongo.URI == "" {
		c.Mongo.URI = os.Getenv("MONGO_URI")
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = os.Getenv("MONGO_DB")
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
