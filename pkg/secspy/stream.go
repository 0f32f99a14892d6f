package secspy

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/briis/secspy/pkg/models"
)

// streamTimeFormat is the 14-digit local timestamp prefixing every
// event line in stream version 3.
const streamTimeFormat = "20060102150405"

// EventStream is a live connection to /eventStream. The caller drives
// it: Next blocks until the server reports a new event or the
// connection drops. The stream never reconnects on its own and spawns
// no goroutines; reconnection policy belongs to the caller.
type EventStream struct {
	body     io.ReadCloser
	scanner  *bufio.Scanner
	url      string
	minScore int
	lastSeq  int64
	closed   atomic.Bool
}

// OpenEventStream connects to the server's live event feed.
func (c *Client) OpenEventStream(ctx context.Context) (*EventStream, error) {
	url := c.cfg.baseURL() + "/eventStream"

	// A dedicated resty client, sharing the transport, leaves the
	// response body unread so it can be consumed line by line.
	streamHTTP := resty.NewWithClient(c.HTTP.GetClient()).
		SetBaseURL(c.cfg.baseURL()).
		SetDoNotParseResponse(true)

	resp, err := streamHTTP.R().
		SetContext(ctx).
		SetQueryParam("version", "3").
		SetQueryParam("format", "multipart").
		SetQueryParam("auth", c.token).
		Get("/eventStream")
	if err != nil {
		return nil, &ConnectionError{Op: "GET", URL: url, Err: err}
	}

	raw := resp.RawBody()
	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		raw.Close()
		return nil, &CredentialsError{StatusCode: resp.StatusCode()}
	case resp.StatusCode() != http.StatusOK:
		raw.Close()
		return nil, &RequestError{StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	sc := bufio.NewScanner(raw)
	sc.Buffer(make([]byte, 0, 64*1024), 256*1024)

	return &EventStream{
		body:     raw,
		scanner:  sc,
		url:      url,
		minScore: c.minScore,
		lastSeq:  -1,
	}, nil
}

// Next returns the next event the server reports, in the order the
// server reports them. Keep-alive chatter and lines that do not parse
// to an event are skipped, as are replays of already-seen sequence
// numbers. On a dropped connection Next returns a *ConnectionError;
// when the stream ends in an orderly way it returns ErrStreamClosed.
func (s *EventStream) Next() (models.Event, error) {
	for {
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil && !s.closed.Load() {
				return models.Event{}, &ConnectionError{Op: "read", URL: s.url, Err: err}
			}
			return models.Event{}, ErrStreamClosed
		}

		evt, ok := parseEventLine(strings.TrimSpace(s.scanner.Text()), s.minScore)
		if !ok {
			continue
		}
		if evt.Sequence >= 0 {
			if evt.Sequence <= s.lastSeq {
				continue
			}
			s.lastSeq = evt.Sequence
		}
		return evt, nil
	}
}

// Close shuts the stream down. A Next blocked on the network returns
// ErrStreamClosed once the underlying body is closed.
func (s *EventStream) Close() error {
	s.closed.Store(true)
	return s.body.Close()
}

// parseEventLine decodes one line of the version-3 stream grammar:
//
//	<yyyymmddhhmmss> <sequence> <camera> <KEY> [args...]
//
// Lines with an unknown key or without the numeric timestamp prefix
// report ok=false.
func parseEventLine(line string, minScore int) (models.Event, bool) {
	if len(line) < 14 || !isDigits(line[:14]) {
		return models.Event{}, false
	}
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return models.Event{}, false
	}

	ts, err := time.ParseInLocation(streamTimeFormat, fields[0], time.Local)
	if err != nil {
		return models.Event{}, false
	}
	seq, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		seq = -1
	}

	evt := models.Event{
		Sequence:     seq,
		CameraNumber: fields[2],
		Timestamp:    ts,
	}

	switch key := fields[3]; key {
	case "ONLINE":
		evt.Type = models.EventOnline
	case "OFFLINE":
		evt.Type = models.EventOffline
	case "ARM_A", "ARM_C", "ARM_M":
		evt.Type = models.EventArmed
		evt.Mode = recordingModeFromKey(key)
	case "DISARM_A", "DISARM_C", "DISARM_M":
		evt.Type = models.EventDisarmed
		evt.Mode = recordingModeFromKey(key)
	case "MOTION":
		evt.Type = models.EventMotion
	case "MOTION_END":
		evt.Type = models.EventMotionEnd
	case "TRIGGER_M":
		evt.Type = models.EventMotion
		if len(fields) > 4 {
			if reason, err := strconv.Atoi(fields[4]); err == nil {
				evt.Reason = reason
				evt.Object = models.ObjectFromReason(reason)
			}
		}
	case "CLASSIFY":
		evt.Type = models.EventMotion
		evt.HumanScore, evt.VehicleScore = classifyScores(fields[4:])
		evt.Object = models.BestObject(evt.HumanScore, evt.VehicleScore, minScore)
	case "FILE":
		evt.Type = models.EventFile
		if len(fields) > 4 {
			evt.FilePath = fields[4]
		}
	default:
		return models.Event{}, false
	}
	return evt, true
}

// classifyScores reads the "HUMAN <n> VEHICLE <n>" argument pairs of a
// CLASSIFY line. Either label may be absent.
func classifyScores(args []string) (human, vehicle int) {
	for i := 0; i+1 < len(args); i += 2 {
		score, err := strconv.Atoi(args[i+1])
		if err != nil {
			continue
		}
		switch args[i] {
		case "HUMAN":
			human = score
		case "VEHICLE":
			vehicle = score
		}
	}
	return human, vehicle
}

func recordingModeFromKey(key string) models.RecordingMode {
	switch key[len(key)-1] {
	case 'A':
		return models.RecordingModeAction
	case 'C':
		return models.RecordingModeContinuous
	case 'M':
		return models.RecordingModeMotion
	}
	return ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
