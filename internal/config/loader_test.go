package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/ats/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.OutputFormat, convey.ShouldEqual, "text")
				convey.So(cfg.SimilarityWindowDays, convey.ShouldEqual, 10)
				convey.So(cfg.HotThreshold, convey.ShouldEqual, 80)
				convey.So(cfg.LevelWeights["expert"], convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("ATS_DATASET_PATH", "/data/candidates.yaml")
			_ = os.Setenv("ATS_OUTPUT_FORMAT", "json")
			_ = os.Setenv("ATS_SIMILARITY_WINDOW_DAYS", "3")
			_ = os.Setenv("ATS_FOLD_DIACRITICS", "true")
			_ = os.Setenv("ATS_HOT_THRESHOLD", "70")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "/data/candidates.yaml")
				convey.So(cfg.OutputFormat, convey.ShouldEqual, "json")
				convey.So(cfg.SimilarityWindowDays, convey.ShouldEqual, 3)
				convey.So(cfg.FoldDiacritics, convey.ShouldBeTrue)
				convey.So(cfg.HotThreshold, convey.ShouldEqual, 70)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
dataset_path: "fixtures/ats.yaml"
output_format: json
similarity_window_days: 5
gender_weight: 30
skill_weight: 70
level_weights:
  expert: 20
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("ATS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "fixtures/ats.yaml")
				convey.So(cfg.OutputFormat, convey.ShouldEqual, "json")
				convey.So(cfg.SimilarityWindowDays, convey.ShouldEqual, 5)
				convey.So(cfg.GenderWeight, convey.ShouldEqual, 30)
				convey.So(cfg.SkillWeight, convey.ShouldEqual, 70)
				convey.So(cfg.LevelWeights["expert"], convey.ShouldEqual, 20)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
output_format: json
similarity_window_days: 5
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("ATS_CONFIG", tmpFile)
			_ = os.Setenv("ATS_SIMILARITY_WINDOW_DAYS", "7")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.OutputFormat, convey.ShouldEqual, "json")     // From file
				convey.So(cfg.SimilarityWindowDays, convey.ShouldEqual, 7) // Overridden by env
				convey.So(cfg.HotThreshold, convey.ShouldEqual, 80)        // From defaults
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("ATS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("ATS_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("ATS_HOT_THRESHOLD", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the loaded values fail validation", func() {
			_ = os.Setenv("ATS_OUTPUT_FORMAT", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "output_format")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"ATS_CONFIG",
		"ATS_DATASET_PATH",
		"ATS_OUTPUT_FORMAT",
		"ATS_SIMILARITY_WINDOW_DAYS",
		"ATS_FOLD_DIACRITICS",
		"ATS_HOT_THRESHOLD",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "ats-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
