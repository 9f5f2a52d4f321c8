// Package corpus seeds a provider from text files holding one passage per line.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordlearn/internal/logger"
	"github.com/bastiangx/wordlearn/pkg/suggest"
	"github.com/charmbracelet/log"
)

// maxLineSize bounds a single passage line
const maxLineSize = 1 << 20

// LoadStats summarizes one corpus load
type LoadStats struct {
	Lines   int
	Trained int
	Skipped int
	Elapsed time.Duration
}

// Loader trains a provider with every passage of a corpus
type Loader struct {
	provider suggest.IProvider
	log      *log.Logger
}

func NewLoader(provider suggest.IProvider) *Loader {
	return &Loader{
		provider: provider,
		log:      logger.New("corpus"),
	}
}

// LoadFile trains the provider with the passages in filename
func (l *Loader) LoadFile(filename string) (LoadStats, error) {
	if err := ValidateFile(filename); err != nil {
		return LoadStats{}, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return LoadStats{}, fmt.Errorf("failed to open corpus file %s: %w", filename, err)
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			l.log.Warnf("Error closing %s: %v", filename, err)
		}
	}(file)

	stats, err := l.Load(file)
	if err != nil {
		return stats, fmt.Errorf("reading corpus file %s: %w", filename, err)
	}
	l.log.Infof("Loaded %s: trained %d of %d lines in %v", filename, stats.Trained, stats.Lines, stats.Elapsed)
	return stats, nil
}

// Load trains the provider with each line of r. Blank lines and lines
// starting with '#' are ignored; lines with a single word are skipped.
func (l *Loader) Load(r io.Reader) (LoadStats, error) {
	start := time.Now()
	stats := LoadStats{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := l.provider.Train(line)
		switch {
		case err == nil:
			stats.Trained++
		case errors.Is(err, suggest.ErrInsufficientInput), errors.Is(err, suggest.ErrInvalidInput):
			stats.Skipped++
			l.log.Debugf("Skipping line %d: %v", stats.Lines, err)
		default:
			stats.Elapsed = time.Since(start)
			return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}
	}

	stats.Elapsed = time.Since(start)
	if err := scanner.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

// ValidateFile checks that filename is a readable regular file
func ValidateFile(filename string) error {
	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("corpus %s is not a regular file", filename)
	}
	return nil
}
