// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// EnvVar selects an isolated set of files, e.g. for development.
const EnvVar = "PACE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir       string
	configFileName  string
	dbFileName      string
	statusFileName  string
	logFileName     string
	catalogFileName string

	// Computed absolute paths
	configFilePath  string
	dataDir         string
	dbFilePath      string
	statusFilePath  string
	logFilePath     string
	catalogFilePath string
}

// New resolves the application paths for the environment named by PACE_ENV.
// Parent directories are created as needed.
func New() (*Paths, error) {
	p := &Paths{
		configDir:       "pace",
		configFileName:  "config.yml",
		dbFileName:      "pace.db",
		statusFileName:  "status.json",
		logFileName:     "pace.log",
		catalogFileName: "workouts.yml",
	}

	p.applyEnvironmentOverrides(os.Getenv(EnvVar))

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

// InDir returns paths rooted at dir instead of the XDG base directories.
func InDir(dir string) *Paths {
	p := &Paths{
		configDir:       "pace",
		configFileName:  "config.yml",
		dbFileName:      "pace.db",
		statusFileName:  "status.json",
		logFileName:     "pace.log",
		catalogFileName: "workouts.yml",
	}

	p.configFilePath = filepath.Join(dir, p.configFileName)
	p.setDataDir(dir)

	return p
}

func (p *Paths) Dir() string {
	return p.configDir
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) DataDir() string {
	return p.dataDir
}

func (p *Paths) DBFilePath() string {
	return p.dbFilePath
}

func (p *Paths) StatusFilePath() string {
	return p.statusFilePath
}

func (p *Paths) LogFilePath() string {
	return p.logFilePath
}

// CatalogFilePath is where the default workout catalog is installed.
func (p *Paths) CatalogFilePath() string {
	return p.catalogFilePath
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("pace_%s.db", env)
	p.statusFileName = fmt.Sprintf("status_%s.json", env)
	p.logFileName = fmt.Sprintf("pace_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.setDataDir(dataDir)

	return nil
}

func (p *Paths) setDataDir(dataDir string) {
	p.dataDir = dataDir
	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)
	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)
	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)
	p.catalogFilePath = filepath.Join(dataDir, p.catalogFileName)
}
