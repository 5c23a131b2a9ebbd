package config

import "github.com/jeffrom/commitlint/rule"

func GetDefault() Config {
	return Config{
		Format: FormatText,
		Rules: rule.Rules{
			SubjectEmpty:     &rule.SubjectEmpty{Severity: rule.LevelError},
			TypeEmpty:        &rule.TypeEmpty{Severity: rule.LevelError},
			DescriptionEmpty: &rule.DescriptionEmpty{Severity: rule.LevelError},
		},
	}
}
