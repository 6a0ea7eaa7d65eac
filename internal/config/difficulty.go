package config

type DifficultyConfig struct {
	Tiers []TierDef `yaml:"tiers"`
}

type TierDef struct {
	Tier    int      `yaml:"tier"`
	Note    string   `yaml:"note"`
	Player  StatsDef `yaml:"player"`
	Monster StatsDef `yaml:"monster"`
}

type StatsDef struct {
	Attack  int     `yaml:"attack"`
	Defense float64 `yaml:"defense"`
}
