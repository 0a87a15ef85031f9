package configloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Structure to bind application parameters
type Config struct {
	LogLevel     string `mapstructure:"LOG_LEVEL" validate:"oneof=panic fatal error warn warning info debug trace"` // logrus library log level to be assigned
	Interpreter  string `mapstructure:"INTERPRETER" validate:"required,abspath"`                                   // executable receiving the companion script
	Companion    string `mapstructure:"COMPANION" validate:"required,barename"`                                    // script stored next to the launcher
	DatabasePath string `mapstructure:"DATABASE_PATH" validate:"omitempty,abspath"`                                // handoff journal and consent flags, disabled when empty
	ConsentFile  string `mapstructure:"CONSENT_FILE"`                                                              // TOML consent flags, used without a database
	ConsentFlag  string `mapstructure:"CONSENT_FLAG" validate:"required"`
	RelayWindow  string `mapstructure:"RELAY_WINDOW" validate:"required"` // window title activated by the clipboard relay
	RelayKeys    string `mapstructure:"RELAY_KEYS" validate:"required"`   // SendKeys sequence sent to the window
}

var validate = newValidator()

func newValidator() *validator.Validate {
	instance := validator.New()
	if err := instance.RegisterValidation("abspath", func(field validator.FieldLevel) bool {
		return filepath.IsAbs(field.Field().String())
	}); err != nil {
		panic(err)
	}
	// A bare file name: no directory part of any platform
	if err := instance.RegisterValidation("barename", func(field validator.FieldLevel) bool {
		name := field.Field().String()
		return name != "." && name != ".." && !strings.ContainsAny(name, `/\:`)
	}); err != nil {
		panic(err)
	}
	return instance
}

func defaultLaunchTarget() (interpreter string, companion string) {
	switch runtime.GOOS {
	case "darwin":
		return "/usr/bin/osascript", "launch.scpt"
	case "windows":
		systemRoot := os.Getenv("SystemRoot")
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}
		return filepath.Join(systemRoot, "System32", "wscript.exe"), "launch.vbs"
	default:
		return "/bin/sh", "launch.sh"
	}
}

// Initialize default parameters values
func initDefaultConfiguration(configuration *viper.Viper) {
	interpreter, companion := defaultLaunchTarget()
	configuration.SetDefault("LOG_LEVEL", "info")
	configuration.SetDefault("INTERPRETER", interpreter)
	configuration.SetDefault("COMPANION", companion)
	configuration.SetDefault("DATABASE_PATH", "")
	configuration.SetDefault("CONSENT_FILE", "consent.toml")
	configuration.SetDefault("CONSENT_FLAG", "analytics-consent")
	configuration.SetDefault("RELAY_WINDOW", "Command Prompt")
	configuration.SetDefault("RELAY_KEYS", "^v")
}

// Load configuration from file and environment
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	configuration := viper.New()
	initDefaultConfiguration(configuration)

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named config from etc/*appName* or $HOME/.*appName*
		configuration.AddConfigPath(filepath.Join(root, "etc", applicationName))
		configuration.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		configuration.SetConfigName("config")
		configuration.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		configuration.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	configuration.SetEnvPrefix(strings.ToUpper(applicationName))
	configuration.AutomaticEnv()

	// Get configuration from configuration file, if set
	if configError := configuration.ReadInConfig(); configError != nil {
		var notFound viper.ConfigFileNotFoundError
		if configurationFilePath != "" {
			err = fmt.Errorf("cannot read configuration file %s: %w", configurationFilePath, configError)
			return
		} else if errors.As(configError, &notFound) {
			logrus.Debug(configError.Error())
		} else {
			logrus.Warn(configError.Error())
		}
	}
	if err = configuration.Unmarshal(&config); err != nil {
		return
	}
	if err = validate.Struct(config); err != nil {
		err = fmt.Errorf("invalid configuration: %w", err)
	}
	return
}
