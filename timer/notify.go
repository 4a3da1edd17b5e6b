package timer

import (
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/calmclock/internal/models"
)

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

type desktopNotifier struct {
	icon string
}

// NewNotifier returns a Notifier that uses the desktop notification service.
// icon may be empty.
func NewNotifier(icon string) Notifier {
	return &desktopNotifier{icon: icon}
}

func (d *desktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, d.icon)
}

func completionMessage(completed, next models.SessionType) (title, msg string) {
	title = completed.Label() + " complete"

	switch next {
	case models.Focus:
		msg = "Break is over. Time to focus."
	case models.LongBreak:
		msg = "Great work! Enjoy a long break."
	default:
		msg = "Nice work. Take a short break."
	}

	return title, msg
}

// notify sends the completion notification in the background.
func (t *Timer) notify(completed, next models.SessionType) {
	if t.notifier == nil {
		return
	}

	title, msg := completionMessage(completed, next)

	go func(n Notifier) {
		if err := n.Notify(title, msg); err != nil {
			slog.Debug("unable to display notification", slog.Any("error", err))
		}
	}(t.notifier)
}

// runSessionCmd starts the configured session command without waiting for it.
func (t *Timer) runSessionCmd() {
	if t.sessionCmd == "" {
		return
	}

	cmd, err := sessionCommand(t.sessionCmd)
	if err != nil {
		slog.Warn(err.Error())
		return
	}

	if cmd == nil {
		return
	}

	go func(line string) {
		if err := cmd.Run(); err != nil {
			slog.Warn(
				"session command failed",
				slog.String("cmd", line),
				slog.Any("error", err),
			)
		}
	}(t.sessionCmd)
}

// sessionCommand parses a shell style command line.
func sessionCommand(line string) (*exec.Cmd, error) {
	cmdSlice, err := shellquote.Split(line)
	if err != nil {
		return nil, errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil, nil
	}

	return exec.Command(cmdSlice[0], cmdSlice[1:]...), nil
}
