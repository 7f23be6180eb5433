package notify

import (
	"log/slog"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/proctor/internal/osutil"
	"github.com/ayoisaiah/proctor/internal/timeutil"
)

// baseWordsPerMinute is the speaking rate used for a rate of 1.
const baseWordsPerMinute = 175

// VoiceOptions configures a Voice.
type VoiceOptions struct {
	Logger *slog.Logger
	// Warn reports that speech is unavailable. It is called at most once.
	Warn func(msg string)
	// Command overrides the text to speech command. The phrase is
	// appended as its last argument.
	Command string
	Lang    string
	Rate    float64
	Volume  float64
}

// Voice speaks announcements through a text to speech command. A new
// phrase interrupts the one being spoken.
type Voice struct {
	logger   *slog.Logger
	warn     func(msg string)
	current  *exec.Cmd
	argv     []string
	warnOnce sync.Once
	mu       sync.Mutex
	muted    bool
}

// NewVoice resolves the speech command. When no command can be found the
// returned Voice is silent.
func NewVoice(opts VoiceOptions) *Voice {
	v := &Voice{
		logger: opts.Logger,
		warn:   opts.Warn,
	}

	if v.logger == nil {
		v.logger = slog.Default()
	}

	if v.warn == nil {
		v.warn = func(msg string) {
			pterm.Warning.Println(msg)
		}
	}

	argv, err := voiceCommand(runtime.GOOS, opts)
	if err != nil {
		v.unavailable("invalid voice command", err)
		return v
	}

	if len(argv) == 0 {
		v.unavailable("speech is not supported on "+runtime.GOOS, nil)
		return v
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		v.unavailable("speech command not found: "+argv[0], err)
		return v
	}

	argv[0] = path
	v.argv = argv

	return v
}

// Available reports whether the voice can speak.
func (v *Voice) Available() bool {
	return len(v.argv) > 0
}

func (v *Voice) Start() {
	v.speak(PhraseStart)
}

func (v *Voice) Continue() {
	v.speak(PhraseContinue)
}

func (v *Voice) MinutesLeft(minutes float64) {
	v.speak(MinutesLeftPhrase(minutes))
}

func (v *Voice) NextChapter() {
	v.speak(PhraseNextChapter)
}

func (v *Voice) End() {
	v.speak(PhraseEnd)
}

// Cancel interrupts the phrase being spoken.
func (v *Voice) Cancel() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cancelLocked()
}

// Mute interrupts the current phrase and suppresses new ones.
func (v *Voice) Mute() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.muted = true
	v.cancelLocked()
}

func (v *Voice) Unmute() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.muted = false
}

func (v *Voice) speak(phrase string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cancelLocked()

	if v.muted || !v.Available() {
		return
	}

	args := append(append([]string(nil), v.argv[1:]...), phrase)

	//nolint:gosec // the command comes from the user's own config file
	cmd := exec.Command(v.argv[0], args...)

	if err := cmd.Start(); err != nil {
		v.logger.Warn(
			"speech command failed",
			slog.String("phrase", phrase),
			slog.Any("error", err),
		)

		return
	}

	v.current = cmd

	go func() {
		_ = cmd.Wait()

		v.mu.Lock()
		if v.current == cmd {
			v.current = nil
		}
		v.mu.Unlock()
	}()
}

func (v *Voice) cancelLocked() {
	if v.current == nil || v.current.Process == nil {
		return
	}

	_ = v.current.Process.Kill()
	v.current = nil
}

func (v *Voice) unavailable(msg string, err error) {
	v.warnOnce.Do(func() {
		v.logger.Warn("voice announcements disabled", slog.String("reason", msg), slog.Any("error", err))
		v.warn("Voice announcements disabled: " + msg)
	})
}

// voiceCommand returns the argv of the speech command without the phrase.
func voiceCommand(goos string, opts VoiceOptions) ([]string, error) {
	if strings.TrimSpace(opts.Command) != "" {
		return shellquote.Split(opts.Command)
	}

	wpm := strconv.Itoa(timeutil.Round(baseWordsPerMinute * opts.Rate))

	switch goos {
	case osutil.Linux:
		lang := strings.ToLower(opts.Lang)
		if lang == "" {
			lang = "en-us"
		}

		amplitude := strconv.Itoa(timeutil.Round(100 * opts.Volume))

		return []string{"espeak-ng", "-v", lang, "-s", wpm, "-a", amplitude}, nil
	case osutil.Darwin:
		return []string{"say", "-r", wpm}, nil
	}

	return nil, nil
}
