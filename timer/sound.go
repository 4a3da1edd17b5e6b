package timer

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	sampleRate     beep.SampleRate = 44100
	chimeFrequency                 = 880
	chimeLength                    = 400 * time.Millisecond
	resampleQuality                = 4
)

var (
	speakerOnce sync.Once
	errSpeaker  error
)

// Player plays the completion cue. Play must not block.
type Player interface {
	Play() error
}

type beepPlayer struct {
	file string
}

// NewPlayer returns a Player for the sound file at path, or for a built-in
// chime if path is empty.
func NewPlayer(path string) Player {
	return &beepPlayer{file: path}
}

func initSpeaker() error {
	speakerOnce.Do(func() {
		errSpeaker = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})

	return errSpeaker
}

func (p *beepPlayer) Play() error {
	var (
		stream beep.Streamer
		err    error
	)

	if p.file == "" {
		stream, err = chime()
	} else {
		stream, err = decodeFile(p.file)
	}

	if err != nil {
		return err
	}

	if err := initSpeaker(); err != nil {
		return err
	}

	speaker.Play(stream)

	return nil
}

func chime() (beep.Streamer, error) {
	tone, err := generators.SineTone(sampleRate, chimeFrequency)
	if err != nil {
		return nil, err
	}

	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(chimeLength), tone),
		Base:     2,
		Volume:   -2,
	}, nil
}

// decodeFile opens a sound file and returns a stream that closes the file once
// it has played to the end.
func decodeFile(path string) (beep.Streamer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errOpenSound.Fmt(path).Wrap(err)
	}

	stream, format, err := decode(f, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, stream)
	}

	return beep.Seq(s, beep.Callback(func() {
		_ = stream.Close()
		_ = f.Close()
	})), nil
}

func decode(
	rc io.ReadCloser,
	ext string,
) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case ".ogg":
		return vorbis.Decode(rc)
	case ".mp3":
		return mp3.Decode(rc)
	case ".flac":
		return flac.Decode(rc)
	case ".wav":
		return wav.Decode(rc)
	default:
		return nil, beep.Format{}, errInvalidSoundFormat
	}
}
