// Package lookup finds a single member for the front-desk quick check.
//
// Lookups run off the caller's goroutine. Each call to Find takes a sequence
// number; when a newer lookup starts before an older one finishes, the older
// result is discarded and its caller receives ErrSuperseded.
package lookup

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"gym_club_backend/internal/models"
)

// ErrSuperseded is returned to a caller whose lookup was overtaken by a newer one.
var ErrSuperseded = errors.New("lookup superseded by a newer request")

// Match returns the first member, in slice order, whose id or member code
// equals term, whose name contains term (case-insensitive), or whose phone
// contains term.
func Match(term string, members []models.Member) (models.Member, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return models.Member{}, false
	}
	lower := strings.ToLower(term)
	for _, m := range members {
		if strconv.FormatInt(m.ID, 10) == term {
			return m, true
		}
		if m.MemberCode != nil && strings.EqualFold(*m.MemberCode, term) {
			return m, true
		}
		if strings.Contains(strings.ToLower(m.Name), lower) {
			return m, true
		}
		if strings.Contains(m.Phone, term) {
			return m, true
		}
	}
	return models.Member{}, false
}

// Lookuper runs Match in the background and keeps only the latest answer.
type Lookuper struct {
	mu     sync.Mutex
	latest uint64
	match  func(string, []models.Member) (models.Member, bool)
}

// New returns a ready Lookuper.
func New() *Lookuper {
	return &Lookuper{match: Match}
}

func (l *Lookuper) next() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.latest++
	return l.latest
}

func (l *Lookuper) current(seq uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.latest == seq
}

type outcome struct {
	member models.Member
	found  bool
}

// Find matches term against members. It returns ErrSuperseded when another
// Find started after this one before the match completed, and ctx.Err() when
// ctx is done first.
func (l *Lookuper) Find(ctx context.Context, term string, members []models.Member) (models.Member, bool, error) {
	seq := l.next()
	done := make(chan outcome, 1)
	go func() {
		m, ok := l.match(term, members)
		done <- outcome{member: m, found: ok}
	}()

	select {
	case <-ctx.Done():
		return models.Member{}, false, ctx.Err()
	case res := <-done:
		if !l.current(seq) {
			return models.Member{}, false, ErrSuperseded
		}
		return res.member, res.found, nil
	}
}
