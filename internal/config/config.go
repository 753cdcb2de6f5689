package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/paydaycal/paydaycal/pkg/budget"
	log "github.com/sirupsen/logrus"
)

const DefaultPath = "./config/application.yaml"

type Application struct {
	Server    Server    `koanf:"server"`
	Cors      Cors      `koanf:"cors"`
	Allowance Allowance `koanf:"allowance"`
}

type Server struct {
	Port int `koanf:"port"`
	// ShutdownTimeout is in seconds.
	ShutdownTimeout int `koanf:"shutdowntimeout"`
}

type Cors struct {
	AllowedOrigins []string `koanf:"allowedorigins"`
}

type Allowance struct {
	Budget         int `koanf:"budget"`
	PayDay         int `koanf:"payday"`
	SaturdayBudget int `koanf:"saturdaybudget"`
}

// Settings returns the allowance section as budget settings.
func (a Allowance) Settings() budget.Settings {
	return budget.Settings{
		Budget:         a.Budget,
		PayDay:         a.PayDay,
		SaturdayBudget: a.SaturdayBudget,
	}.WithDefaults()
}

func defaults() Application {
	return Application{
		Server: Server{
			Port:            8181,
			ShutdownTimeout: 15,
		},
		Cors: Cors{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Allowance: Allowance{
			Budget:         budget.DefaultBudget,
			PayDay:         budget.DefaultPayDay,
			SaturdayBudget: budget.DefaultSaturdayBudget,
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "PAYDAYCAL_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "PAYDAYCAL_")), "_", ".")
			if k == "cors.allowedorigins" {
				return k, strings.Split(v, ",")
			}
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	if err := app.Allowance.Settings().Validate(); err != nil {
		log.Errorf("invalid allowance configuration: %v", err)
		return Application{}, err
	}

	return app, nil
}
