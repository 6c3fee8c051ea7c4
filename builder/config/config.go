// handles the config file, command-line flags and environment overrides
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "config.yaml"

// Config is the user-facing configuration as read from disk.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	GitHub   GitHubConfig   `yaml:"github"`
	Build    BuildConfig    `yaml:"build"`
	Features FeaturesConfig `yaml:"features"`
	Paths    PathsConfig    `yaml:"paths"`
	Log      LogConfig      `yaml:"log"`

	// Runtime-only settings
	Offline    bool   `yaml:"-"`
	ConfigFile string `yaml:"-"`
}

type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	URL         string `yaml:"url"`
	Avatar      string `yaml:"avatar"`
	Favicon     string `yaml:"favicon"`
}

type GitHubConfig struct {
	Owner  string `yaml:"owner"`
	Repo   string `yaml:"repo"`
	Token  string `yaml:"token"`
	APIURL string `yaml:"apiURL"`
}

type FeaturesConfig struct {
	Sitemap bool `yaml:"sitemap"`
	RSS     bool `yaml:"rss"`
}

type PathsConfig struct {
	Templates string `yaml:"templates"`
	Assets    string `yaml:"assets"`
	Output    string `yaml:"output"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load parses flags from args, reads the config file and applies environment
// overrides. A missing config file is not an error when -config was not given.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configFlag := fs.String("config", "", "Path to config file (default config.yaml, then config.json)")
	compressFlag := fs.Bool("compress", false, "Minify output and downscale large images")
	outputFlag := fs.String("output", "", "Output directory")
	offlineFlag := fs.Bool("offline", false, "Skip GitHub and build from the built-in sample posts")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	cfg := Default()

	path, explicit := *configFlag, *configFlag != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			cfg.ConfigFile = path
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	applyEnv(cfg, os.Getenv)

	if *compressFlag {
		cfg.Build.Compress = true
	}
	if *outputFlag != "" {
		cfg.Paths.Output = *outputFlag
	}
	cfg.Offline = *offlineFlag

	cfg.validate()
	return cfg, nil
}

func findConfigFile() string {
	for _, name := range []string{DefaultConfigFile, "config.json"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return DefaultConfigFile
}

// applyEnv lets CI environments point the build at a repository without
// editing the config file.
func applyEnv(cfg *Config, getenv func(string) string) {
	if repo := getenv("GITHUB_REPOSITORY"); repo != "" {
		owner, name, ok := strings.Cut(repo, "/")
		if ok && owner != "" && name != "" {
			cfg.GitHub.Owner = owner
			cfg.GitHub.Repo = name
		}
	}
	if token := getenv("GITHUB_TOKEN"); token != "" {
		cfg.GitHub.Token = token
	}
}
