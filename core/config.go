package core

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string // DEV (default), TEST, QA, PROD
	AppName  string
	Build    string

	Server struct {
		Host string
		Port int
	}

	Notifier struct {
		Backend        string // console (default) | sendgrid
		FromEmail      string
		Recipients     []string
		SendgridAPIKey string
	}

	RollbarToken string
}

func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// NewConfig loads the app configuration from the environment,
// with `config/.env.<env>` loaded first if it exists.
func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "CoachCenter")
	v.SetDefault("serverHost", "")
	v.SetDefault("serverPort", 8000)
	v.SetDefault("notifierBackend", "console")
	v.SetDefault("notifierFromEmail", "noreply@localhost")
	v.SetDefault("notifierRecipients", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:    v.GetBool("debug"),
		TestMode: env == "TEST",
		Env:      env,
		AppName:  v.GetString("appName"),
		Build:    v.GetString("build"),
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.Port = v.GetInt("serverPort")
	conf.Notifier.Backend = v.GetString("notifierBackend")
	conf.Notifier.FromEmail = v.GetString("notifierFromEmail")
	if recipients := v.GetString("notifierRecipients"); recipients != "" {
		for _, addr := range strings.Split(recipients, ",") {
			conf.Notifier.Recipients = append(conf.Notifier.Recipients, strings.TrimSpace(addr))
		}
	}
	conf.Notifier.SendgridAPIKey = v.GetString("sendgridApiKey")
	conf.RollbarToken = v.GetString("rollbarToken")

	if conf.Notifier.Backend != "console" && conf.Notifier.Backend != "sendgrid" {
		return nil, fmt.Errorf("unknown notifier backend %q", conf.Notifier.Backend)
	}
	return conf, nil
}
