// Package timer runs the calmclock session state machine and owns everything
// that happens around it: the countdown, completion side effects, the session
// journal and the terminal interface
package timer

import (
	"log/slog"
	"math"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"github.com/ayoisaiah/calmclock/internal/config"
	"github.com/ayoisaiah/calmclock/internal/models"
	"github.com/ayoisaiah/calmclock/internal/timeutil"
	"github.com/ayoisaiah/calmclock/stats"
)

const (
	tickInterval     = time.Second
	dayWatchInterval = time.Minute
)

// Questions asked before destructive actions.
const (
	SwitchTypeQuestion = "Switch session type now? Current timer will reset."
	ClearLogsQuestion  = "This will permanently delete all logs. Continue?"
)

// Repository persists the settings and the session log. Reads never fail;
// an absent or corrupt record yields defaults.
type Repository interface {
	Settings() config.Settings
	SaveSettings(s config.Settings) error
	Logs() []models.Entry
	SaveLogs(entries []models.Entry) error
}

// Prompt asks the user to confirm an action and shows short notices.
type Prompt interface {
	Confirm(question string) bool
	Notice(msg string)
}

// Snapshot is everything needed to render the timer.
type Snapshot struct {
	State    State
	Settings config.Settings
	Stats    stats.Stats
	// Logs are newest first.
	Logs    []models.Entry
	Presets []int
}

// Timer is the controller that owns the session state machine. It is not safe
// for concurrent use: every method must be called from one goroutine, which is
// also where the callbacks of its tasks are delivered.
type Timer struct {
	repo         Repository
	settings     config.Settings
	state        State
	stats        stats.Stats
	lastLoggedID string
	countdown    Task
	dayWatch     Task
	now          func() time.Time
	loc          *time.Location
	player       Player
	notifier     Notifier
	sessionCmd   string
	presets      []int
	dispatch     Dispatcher
	newTask      TaskFactory
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// WithLocation sets the time zone used to decide calendar days.
func WithLocation(loc *time.Location) Option {
	return func(t *Timer) {
		t.loc = loc
	}
}

// WithScheduler replaces the factory used for the countdown and day watch.
func WithScheduler(f TaskFactory) Option {
	return func(t *Timer) {
		t.newTask = f
	}
}

// WithPlayer sets the audio cue played when an interval completes.
func WithPlayer(p Player) Option {
	return func(t *Timer) {
		t.player = p
	}
}

// WithNotifier enables desktop notifications on completion.
func WithNotifier(n Notifier) Option {
	return func(t *Timer) {
		t.notifier = n
	}
}

// WithSessionCmd sets a command to run after every completed interval.
func WithSessionCmd(cmd string) Option {
	return func(t *Timer) {
		t.sessionCmd = cmd
	}
}

// WithPresets sets the quick focus lengths in minutes.
func WithPresets(mins []int) Option {
	return func(t *Timer) {
		t.presets = mins
	}
}

// New returns a Timer loaded with a paused focus interval of full length.
func New(repo Repository, opts ...Option) *Timer {
	t := &Timer{
		repo:     repo,
		now:      time.Now,
		loc:      time.Local,
		dispatch: NewDispatcher(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.newTask == nil {
		t.newTask = t.dispatch.Scheduler()
	}

	t.countdown = t.newTask(tickInterval, t.Tick)
	t.dayWatch = t.newTask(dayWatchInterval, t.checkDay)

	t.settings = repo.Settings()
	t.SetType(models.Focus)
	t.refreshStats()

	return t
}

// Callbacks is the channel on which task callbacks arrive. The owner of the
// Timer must run each one it receives.
func (t *Timer) Callbacks() <-chan func() {
	return t.dispatch
}

// State returns the current state.
func (t *Timer) State() State {
	return t.state
}

// Settings returns the settings read at the last transition.
func (t *Timer) Settings() config.Settings {
	return t.settings
}

// Stats returns the statistics computed at the last log change.
func (t *Timer) Stats() stats.Stats {
	return t.stats
}

// Location is the time zone used to decide calendar days.
func (t *Timer) Location() *time.Location {
	return t.loc
}

// Presets returns the quick focus lengths in minutes.
func (t *Timer) Presets() []int {
	return t.presets
}

// Snapshot returns everything the interface renders.
func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		State:    t.state,
		Settings: t.settings,
		Stats:    t.stats,
		Logs:     t.Logs(),
		Presets:  t.presets,
	}
}

// SetType loads a fresh, paused interval of type st.
func (t *Timer) SetType(st models.SessionType) {
	t.countdown.Stop()

	t.settings = t.repo.Settings()

	planned := t.settings.Length(st) * 60

	t.state.Type = st
	t.state.SecondsLeft = planned
	t.state.PlannedSeconds = planned
	t.state.StartedAt = 0
	t.state.Running = false
}

// Start runs the countdown. The display is updated at once rather than after
// the first second.
func (t *Timer) Start() {
	if t.state.Running {
		return
	}

	if t.state.StartedAt == 0 {
		t.state.StartedAt = t.now().UnixMilli()
	}

	t.state.Running = true

	t.Tick()

	if t.state.Running {
		t.countdown.Start()
	}
}

// Pause halts the countdown. SecondsLeft and StartedAt are kept so that the
// interval can be resumed.
func (t *Timer) Pause() {
	if !t.state.Running {
		return
	}

	t.countdown.Stop()
	t.state.Running = false
}

// Toggle starts a paused timer or pauses a running one.
func (t *Timer) Toggle() {
	if t.state.Running {
		t.Pause()
		return
	}

	t.Start()
}

// Reset restores the current interval to its full length.
func (t *Timer) Reset() {
	t.countdown.Stop()

	t.settings = t.repo.Settings()

	planned := t.settings.Length(t.state.Type) * 60

	t.state.SecondsLeft = planned
	t.state.PlannedSeconds = planned
	t.state.StartedAt = 0
	t.state.Running = false
}

// Tick advances a running countdown by one second and completes the interval
// when it reaches zero.
func (t *Timer) Tick() {
	if !t.state.Running {
		return
	}

	t.state.SecondsLeft = max(0, t.state.SecondsLeft-1)

	if t.state.SecondsLeft > 0 {
		return
	}

	t.countdown.Stop()
	t.state.Running = false

	t.complete()
}

func (t *Timer) complete() {
	end := t.now()
	planned := t.state.PlannedSeconds

	elapsed := planned
	if t.state.StartedAt != 0 {
		elapsed = int(math.Round(float64(end.UnixMilli()-t.state.StartedAt) / 1000))
	}

	start := t.state.StartedAt
	if start == 0 {
		start = end.UnixMilli() - int64(planned)*1000
	}

	entry := models.Entry{
		ID:          uuid.NewString(),
		Type:        t.state.Type,
		Start:       start,
		End:         end.UnixMilli(),
		DurationSec: clampDuration(elapsed, planned),
	}

	entries := append(t.repo.Logs(), entry)
	if err := t.repo.SaveLogs(entries); err != nil {
		slog.Error(errSaveLogs.Error(), slog.Any("error", err))
	}

	t.lastLoggedID = entry.ID

	slog.Info(
		"session completed",
		slog.String("type", string(entry.Type)),
		slog.Int("duration_sec", entry.DurationSec),
	)

	completed := t.state.Type
	if completed == models.Focus {
		t.state.CompletedFocus++
	}

	t.settings = t.repo.Settings()

	if t.settings.SoundEnabled && t.player != nil {
		if err := t.player.Play(); err != nil {
			slog.Debug("unable to play sound", slog.Any("error", err))
		}
	}

	next := nextType(completed, t.state.CompletedFocus, t.settings.LongBreakEvery)

	t.notify(completed, next)
	t.runSessionCmd()

	t.refreshStats()

	t.SetType(next)

	if t.settings.AutoNext {
		t.Start()
	}

	slog.Debug("next session prepared", slog.String("state", spew.Sdump(t.state)))
}

// SelectType switches to st at the user's request. A running interval is
// discarded without being logged, but only after the user agrees. It reports
// whether the switch happened.
func (t *Timer) SelectType(st models.SessionType, p Prompt) bool {
	if t.state.Running && !p.Confirm(SwitchTypeQuestion) {
		return false
	}

	t.SetType(st)

	return true
}

// Preset loads a paused focus interval of the given length in minutes.
func (t *Timer) Preset(mins int) {
	t.SetType(models.Focus)

	secs := min(config.MaxFocusLen, max(config.MinFocusLen, mins)) * 60

	t.state.SecondsLeft = secs
	t.state.PlannedSeconds = secs
}

// ApplySettings clamps and saves user supplied settings and reloads the
// current interval at its new length. A running countdown carries on.
func (t *Timer) ApplySettings(in config.SettingsInput) (config.Settings, error) {
	s := in.Clamp()

	if err := t.repo.SaveSettings(s); err != nil {
		return t.settings, errSaveSettings.Wrap(err)
	}

	t.settings = s

	planned := s.Length(t.state.Type) * 60

	t.state.SecondsLeft = planned
	t.state.PlannedSeconds = planned

	return s, nil
}

// WatchDay starts the task that refreshes the statistics when the calendar
// day changes.
func (t *Timer) WatchDay() {
	t.dayWatch.Start()
}

func (t *Timer) checkDay() {
	if t.today() != t.stats.Today {
		slog.Debug("calendar day changed", slog.String("today", t.today()))
		t.refreshStats()
	}
}

// Close stops every task owned by the timer.
func (t *Timer) Close() {
	t.countdown.Stop()
	t.dayWatch.Stop()
}

func (t *Timer) today() string {
	return timeutil.DateKey(t.now().In(t.loc))
}

func (t *Timer) refreshStats() {
	t.stats = stats.Compute(t.repo.Logs(), t.today(), t.loc)
}
