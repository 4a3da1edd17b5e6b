// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/calmclock/internal/osutil"
)

const envName = "CALMCLOCK_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
	dataDir        string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize computes the application paths. It is safe to call more than
// once; only the first call does any work.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			appDir:         "calmclock",
			configFileName: "config.yml",
			dbFileName:     "calmclock.db",
			logFileName:    "calmclock.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// DataDir is where exports are written unless another directory is given.
func DataDir() string {
	return Must().dataDir
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("calmclock_%s.db", env)
		p.logFileName = fmt.Sprintf("calmclock_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.appDir, p.configFileName),
	)
	if err != nil {
		return err
	}

	p.dataDir, err = xdg.DataFile(p.appDir)
	if err != nil {
		return err
	}

	err = os.MkdirAll(p.dataDir, osutil.DirPermission)
	if err != nil {
		return err
	}

	p.dbFilePath = filepath.Join(p.dataDir, p.dbFileName)

	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}
