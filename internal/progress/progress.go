// Package progress provides the sinks a training loop reports its iteration
// progress to: a terminal bar, a structured-log reporter and a no-op.
package progress

import (
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives training progress.
//
// Start is called once with the total number of iterations, Advance once per
// finished iteration and Finish when the loop ends.
type Reporter interface {
	Start(total int)
	Advance()
	Finish()
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int) {}
func (Nop) Advance()  {}
func (Nop) Finish()   {}

// Bar renders a "[=>-]" progress bar to a writer, usually os.Stderr.
type Bar struct {
	w           io.Writer
	description string
	bar         *progressbar.ProgressBar
	done        int
}

// NewBar creates a bar that renders to w. The underlying bar is created on
// Start, so one Bar can be reused for consecutive training runs.
func NewBar(w io.Writer, description string) *Bar {
	return &Bar{w: w, description: description}
}

// Start resets the bar for total iterations.
func (b *Bar) Start(total int) {
	b.done = 0
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription(b.description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: "-",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// Advance moves the bar one iteration forward.
func (b *Bar) Advance() {
	if b.bar == nil {
		return
	}
	b.done++
	_ = b.bar.Add(1)
}

// Finish completes the bar and terminates its line.
func (b *Bar) Finish() {
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
	_, _ = io.WriteString(b.w, "\n")
	b.bar = nil
}

// Done returns the number of iterations reported since the last Start.
func (b *Bar) Done() int {
	return b.done
}

// Log writes a structured record every n iterations and on Finish.
type Log struct {
	logger *slog.Logger
	every  int
	total  int
	done   int
}

// NewLog creates a reporter logging through logger every n iterations.
// n <= 0 logs only the final record.
func NewLog(logger *slog.Logger, every int) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger, every: every}
}

func (l *Log) Start(total int) {
	l.total = total
	l.done = 0
	l.logger.Debug("training started", "total", total)
}

func (l *Log) Advance() {
	l.done++
	if l.every > 0 && l.done%l.every == 0 {
		l.logger.Info("training progress", "iteration", l.done, "total", l.total)
	}
}

func (l *Log) Finish() {
	l.logger.Info("training finished", "iterations", l.done, "total", l.total)
}
