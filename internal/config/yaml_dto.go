package config

type YAMLConfig struct {
	Board     YAMLBoard     `yaml:"board"`
	Generator YAMLGenerator `yaml:"generator"`
	Paths     YAMLPaths     `yaml:"paths"`
}

type YAMLBoard struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

type YAMLGenerator struct {
	Seed        *int64 `yaml:"seed"`
	MaxAttempts *int   `yaml:"max_attempts"`
	ScaleBudget *bool  `yaml:"scale_budget"`
}

type YAMLPaths struct {
	Snapshots *string `yaml:"snapshots"`
}
