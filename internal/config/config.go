package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/limaJavier/timetable-builder/pkg/model"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	EnvPrefix = "TIMETABLE"
)

type Config struct {
	Env string `validate:"oneof=development production"`

	Log       LogConfig
	Scheduler SchedulerConfig
	Policy    PolicyConfig
	Slots     SlotsConfig
}

type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=console json"`
}

type SchedulerConfig struct {
	Suggestions           int     `validate:"min=0"`
	Seed                  uint64  // Zero seeds from the clock
	MaxAttemptsPerSession int     `validate:"min=1"`
	SimilarityThreshold   float64 `validate:"gt=0,lte=100"`
	FailureSlack          int     `validate:"min=0"`
	LabCapacityFactor     int     `validate:"min=1"`
}

type PolicyConfig struct {
	MaxInstructorHours int `validate:"min=0"`
	MinRoomHours       int `validate:"min=0"`
	MinRoomDays        int `validate:"min=0,max=5"`
}

// SlotsConfig describes the slot grid generated when the input carries no slots
type SlotsConfig struct {
	StartHour int `validate:"min=0,max=23"`
	EndHour   int `validate:"gtfield=StartHour,max=24"`
	LabLength int `validate:"min=0"`
}

// Load reads the configuration from defaults, an optional config file (when path is not empty), a .env
// file in the working directory and TIMETABLE_ prefixed environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.Env = v.GetString("env")

	cfg.Log = LogConfig{
		Level:  strings.ToLower(v.GetString("log.level")),
		Format: strings.ToLower(v.GetString("log.format")),
	}

	cfg.Scheduler = SchedulerConfig{
		Suggestions:           v.GetInt("scheduler.suggestions"),
		Seed:                  v.GetUint64("scheduler.seed"),
		MaxAttemptsPerSession: v.GetInt("scheduler.maxAttemptsPerSession"),
		SimilarityThreshold:   v.GetFloat64("scheduler.similarityThreshold"),
		FailureSlack:          v.GetInt("scheduler.failureSlack"),
		LabCapacityFactor:     v.GetInt("scheduler.labCapacityFactor"),
	}

	cfg.Policy = PolicyConfig{
		MaxInstructorHours: v.GetInt("policy.maxInstructorHours"),
		MinRoomHours:       v.GetInt("policy.minRoomHours"),
		MinRoomDays:        v.GetInt("policy.minRoomDays"),
	}

	cfg.Slots = SlotsConfig{
		StartHour: v.GetInt("slots.startHour"),
		EndHour:   v.GetInt("slots.endHour"),
		LabLength: v.GetInt("slots.labLength"),
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (cfg *Config) SchedulerOptions() model.SchedulerOptions {
	return model.SchedulerOptions{
		MaxAttemptsPerSession: cfg.Scheduler.MaxAttemptsPerSession,
		SimilarityThreshold:   cfg.Scheduler.SimilarityThreshold,
		FailureSlack:          cfg.Scheduler.FailureSlack,
		LabCapacityFactor:     cfg.Scheduler.LabCapacityFactor,
	}
}

func (cfg *Config) PolicyLimits() model.PolicyLimits {
	return model.PolicyLimits{
		MaxInstructorHours: cfg.Policy.MaxInstructorHours,
		MinRoomHours:       cfg.Policy.MinRoomHours,
		MinRoomDays:        cfg.Policy.MinRoomDays,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", EnvDevelopment)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("scheduler.suggestions", 5)
	v.SetDefault("scheduler.seed", 0)
	v.SetDefault("scheduler.maxAttemptsPerSession", model.MaxAttemptsPerSession)
	v.SetDefault("scheduler.similarityThreshold", model.DefaultSimilarityThreshold)
	v.SetDefault("scheduler.failureSlack", model.SuggestionFailureSlack)
	v.SetDefault("scheduler.labCapacityFactor", model.LabCapacityFactor)

	v.SetDefault("policy.maxInstructorHours", model.DefaultMaxInstructorHours)
	v.SetDefault("policy.minRoomHours", model.DefaultMinRoomHours)
	v.SetDefault("policy.minRoomDays", model.DefaultMinRoomDays)

	v.SetDefault("slots.startHour", 8)
	v.SetDefault("slots.endHour", 18)
	v.SetDefault("slots.labLength", 2)
}
