package git

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Progress is one remote-operation progress snapshot.
type Progress struct {
	Phase   string
	Percent int
	Objects int
	Total   int
	Bytes   int64
}

// ProgressSink receives progress snapshots. Implementations must be safe to
// call from the transport goroutine.
type ProgressSink func(Progress)

var (
	percentPattern = regexp.MustCompile(`(\d+)%`)
	countsPattern  = regexp.MustCompile(`\((\d+)/(\d+)\)`)
)

// sidebandWriter parses the remote's sideband progress stream. Percent never
// decreases across the whole operation even when the remote restarts counting
// for a new phase.
type sidebandWriter struct {
	mu      sync.Mutex
	sink    ProgressSink
	partial string
	last    Progress
}

func newSidebandWriter(sink ProgressSink) *sidebandWriter {
	return &sidebandWriter{sink: sink}
}

func (w *sidebandWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.last.Bytes += int64(len(p))
	w.partial += string(p)
	for {
		idx := strings.IndexAny(w.partial, "\r\n")
		if idx < 0 {
			break
		}
		line := w.partial[:idx]
		w.partial = w.partial[idx+1:]
		w.consumeLine(line)
	}
	if w.sink != nil {
		w.sink(w.last)
	}
	return len(p), nil
}

func (w *sidebandWriter) consumeLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if idx := strings.Index(line, ":"); idx > 0 {
		w.last.Phase = strings.TrimSpace(line[:idx])
	}
	if m := percentPattern.FindStringSubmatch(line); m != nil {
		if pct, err := strconv.Atoi(m[1]); err == nil && pct > w.last.Percent {
			if pct > 100 {
				pct = 100
			}
			w.last.Percent = pct
		}
	}
	if m := countsPattern.FindStringSubmatch(line); m != nil {
		objects, _ := strconv.Atoi(m[1])
		total, _ := strconv.Atoi(m[2])
		if total >= objects {
			w.last.Objects = objects
			w.last.Total = total
		}
	}
}

// Snapshot returns the most recent parsed progress.
func (w *sidebandWriter) Snapshot() Progress {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}
