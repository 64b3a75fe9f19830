package storage

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/validator"
)

const (
	SolutionsFile = "solutions"
	StartingFile  = "starting"
)

// Corpus serves the solution and starting lists. Files in dir take
// precedence; anything missing there is read from fallback.
type Corpus struct {
	dir      string
	fallback fs.FS
	logger   zerolog.Logger

	once      sync.Once
	solutions []string
	starting  []string
	err       error
}

func NewCorpus(dir string, fallback fs.FS) *Corpus {
	return &Corpus{
		dir:      dir,
		fallback: fallback,
		logger:   log.With().Str("module", "corpus").Logger(),
	}
}

func (c *Corpus) Solutions(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.once.Do(c.load)
	return c.solutions, c.err
}

func (c *Corpus) Starting(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.once.Do(c.load)
	return c.starting, c.err
}

func (c *Corpus) load() {
	data, err := c.read(SolutionsFile)
	if err != nil {
		c.err = err
		return
	}
	c.solutions = c.parse(SolutionsFile, data, func(p domain.Placement) bool { return p.Complete() })
	data, err = c.read(StartingFile)
	if err != nil {
		c.err = err
		return
	}
	c.starting = c.parse(StartingFile, data, func(p domain.Placement) bool { return !p.Complete() })
	c.logger.Info().Int("solutions", len(c.solutions)).Int("starting", len(c.starting)).Msg("corpus loaded")
}

func (c *Corpus) read(name string) ([]byte, error) {
	if c.dir != "" {
		b, err := os.ReadFile(filepath.Join(c.dir, name))
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		c.logger.Debug().Str("file", name).Str("dir", c.dir).Msg("not in data dir, using embedded copy")
	}
	if c.fallback == nil {
		return nil, fs.ErrNotExist
	}
	return fs.ReadFile(c.fallback, name)
}

// parse keeps lines that decode, replay cleanly and satisfy keep.
func (c *Corpus) parse(name string, data []byte, keep func(domain.Placement) bool) []string {
	out := []string{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := domain.ParsePlacement(line)
		if err == nil {
			var b domain.Board
			_, err = validator.Replay(&b, p)
		}
		if err == nil && !keep(p) {
			err = domain.ErrMalformed
		}
		if err != nil {
			c.logger.Warn().Str("file", name).Int("line", n).Err(err).Msg("dropping corpus entry")
			continue
		}
		out = append(out, line)
	}
	return out
}
