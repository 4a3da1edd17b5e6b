package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/calmclock/internal/config"
	"github.com/ayoisaiah/calmclock/internal/logging"
	"github.com/ayoisaiah/calmclock/internal/osutil"
	"github.com/ayoisaiah/calmclock/internal/pathutil"
	"github.com/ayoisaiah/calmclock/internal/ui"
	"github.com/ayoisaiah/calmclock/store"
	"github.com/ayoisaiah/calmclock/timer"
)

const (
	envNoColor          = "NO_COLOR"
	envCalmClockNoColor = "CALMCLOCK_NO_COLOR"
)

// env is everything an action needs: the configuration, an open store and the
// log file.
type env struct {
	cfg  *config.Config
	kv   store.KV
	repo *store.Repo
	log  io.Closer
}

func (e *env) Close() {
	_ = e.kv.Close()
	_ = e.log.Close()
}

// setup loads the configuration and opens the store. The caller must close
// the returned env.
func setup(ctx *cli.Context) (*env, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, errInitPaths.Wrap(err)
	}

	cfg, err := config.New(
		config.WithPaths(
			pathutil.ConfigFilePath(),
			pathutil.DBFilePath(),
			pathutil.LogFilePath(),
		),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	level, _ := cfg.LogLevel()
	logFile := logging.Setup(cfg.PathToLog, level)

	ui.DarkTheme = cfg.Display.DarkTheme

	if cfg.CLI.NoColor {
		disableStyling()
	}

	var kv store.KV

	if cfg.CLI.Ephemeral {
		kv = store.NewMemory()
	} else {
		kv, err = store.Open(cfg.Storage.Driver, cfg.PathToDB)
		if err != nil {
			_ = logFile.Close()
			return nil, errOpenStore.Wrap(err)
		}
	}

	slog.Debug(
		"environment ready",
		slog.String("driver", cfg.Storage.Driver),
		slog.Bool("ephemeral", cfg.CLI.Ephemeral),
	)

	return &env{
		cfg:  cfg,
		kv:   kv,
		repo: store.NewRepo(kv),
		log:  logFile,
	}, nil
}

// newTimer builds a timer from the configuration.
func (e *env) newTimer() *timer.Timer {
	cfg := e.cfg

	opts := []timer.Option{
		timer.WithPresets(cfg.Settings.Presets),
		timer.WithSessionCmd(cfg.Settings.SessionCmd),
		timer.WithPlayer(timer.NewPlayer(cfg.Sound.File)),
	}

	if cfg.Notifications.Enabled {
		opts = append(opts, timer.WithNotifier(timer.NewNotifier("")))
	}

	return timer.New(e.repo, opts...)
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editConfigAction handles the edit-config command which opens the calmclock
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	// the editor may take a while; don't hold the store lock meanwhile
	e.Close()

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, e.cfg.PathToConfig)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

// defaultAction launches the interactive timer.
func defaultAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	t := e.newTimer()

	if e.cfg.CLI.Preset > 0 {
		t.Preset(e.cfg.CLI.Preset)
	}

	slog.Info("starting timer", slog.Any("settings", t.Settings()))

	return timer.Run(t, timer.UIOptions{
		ExportDir:      pathutil.DataDir(),
		TwentyFourHour: e.cfg.Display.TwentyFourHour,
	})
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/calmclock/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if CALMCLOCK_NO_COLOR is set
	if _, exists := os.LookupEnv(envCalmClockNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting calmclock")

	return nil
}
