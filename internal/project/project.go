package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mwrona/comprep/internal/venv"
)

// Conventional file names within a project directory.
const (
	ConfigFile      = ".comprep.yaml"
	DefaultManifest = "requirements.txt"
	DefaultVenvDir  = ".venv"
	LockFile        = "uv.lock"
)

// Config is the optional per-project configuration file.
type Config struct {
	Installer string `yaml:"installer,omitempty"`
	Manifest  string `yaml:"manifest,omitempty"`
	VenvDir   string `yaml:"venv_dir,omitempty"`
}

// Context holds the resolved paths for a project. Loading never requires
// the manifest or lock to exist; provisioning leaves content validation to
// the external tools.
type Context struct {
	Root         string
	ManifestPath string
	LockPath     string
	Venv         venv.Env
	Config       Config
}

// Load resolves project paths, reading .comprep.yaml when present.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	var cfg Config
	cfgPath := filepath.Join(root, ConfigFile)
	if data, err := os.ReadFile(cfgPath); err == nil { //nolint:gosec // project config path
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ConfigFile, err)
		}
		if cfg.Installer != "" {
			if _, err := ParseInstaller(cfg.Installer); err != nil {
				return nil, fmt.Errorf("%s: %w", ConfigFile, err)
			}
		}
	}

	mf := cfg.Manifest
	if mf == "" {
		mf = DefaultManifest
	}
	vd := cfg.VenvDir
	if vd == "" {
		vd = DefaultVenvDir
	}

	return &Context{
		Root:         root,
		ManifestPath: filepath.Join(root, mf),
		LockPath:     filepath.Join(root, LockFile),
		Venv:         venv.At(filepath.Join(root, vd)),
		Config:       cfg,
	}, nil
}

// HasManifest reports whether the manifest file exists.
func (c *Context) HasManifest() bool {
	info, err := os.Stat(c.ManifestPath)
	return err == nil && !info.IsDir()
}

// HasLock reports whether the lock file exists.
func (c *Context) HasLock() bool {
	info, err := os.Stat(c.LockPath)
	return err == nil && !info.IsDir()
}

// Installer selects one of the two provisioning strategies.
type Installer string

const (
	InstallerPip Installer = "pip"
	InstallerUv  Installer = "uv"
)

// ParseInstaller parses an installer name. Empty defaults to uv.
func ParseInstaller(s string) (Installer, error) {
	switch Installer(s) {
	case InstallerUv, "":
		return InstallerUv, nil
	case InstallerPip:
		return InstallerPip, nil
	default:
		return "", fmt.Errorf("unknown installer: %q (must be pip or uv)", s)
	}
}

// EffectiveInstaller resolves the installer: explicit flag value first,
// then project config, then the uv default.
func (c *Context) EffectiveInstaller(flag string) (Installer, error) {
	if flag != "" {
		return ParseInstaller(flag)
	}
	return ParseInstaller(c.Config.Installer)
}
