package openf1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"f1lapvisualiser/pkg/compound"
	"f1lapvisualiser/pkg/laps"
	"f1lapvisualiser/pkg/provider"
)

const (
	DefaultBaseURL = "https://api.openf1.org/v1"
	DefaultTimeout = 30 * time.Second
	defaultBackoff = time.Second

	// FirstSeason is the first season OpenF1 has timing data for.
	FirstSeason = 2023
)

// Client is a provider.Provider backed by the OpenF1 API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	backoff    time.Duration
}

var _ provider.Provider = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, retries int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if retries < 0 {
		retries = 0
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retries:    retries,
		backoff:    defaultBackoff,
	}
}

func (c *Client) EventNames(ctx context.Context, year int) ([]string, error) {
	meetings, err := c.meetings(ctx, year)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(meetings))
	for _, m := range meetings {
		names = append(names, m.MeetingName)
	}
	return names, nil
}

func (c *Client) LoadSession(ctx context.Context, year int, event, sessionName string) (*provider.Session, error) {
	meetings, err := c.meetings(ctx, year)
	if err != nil {
		return nil, err
	}
	var meeting *Meeting
	for i := range meetings {
		if meetings[i].MeetingName == event {
			meeting = &meetings[i]
			break
		}
	}
	if meeting == nil {
		return nil, errors.Errorf("event %q not found in %d", event, year)
	}

	var sessions []Session
	err = c.get(ctx, "sessions", url.Values{
		"meeting_key":  {strconv.Itoa(meeting.MeetingKey)},
		"session_name": {sessionName},
	}, &sessions)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, errors.Errorf("%s %d has no %s session", event, year, sessionName)
	}
	sessionKey := url.Values{"session_key": {strconv.Itoa(sessions[0].SessionKey)}}

	var drivers []Driver
	if err := c.get(ctx, "drivers", sessionKey, &drivers); err != nil {
		return nil, err
	}
	var rawLaps []Lap
	if err := c.get(ctx, "laps", sessionKey, &rawLaps); err != nil {
		return nil, err
	}
	var stints []Stint
	if err := c.get(ctx, "stints", sessionKey, &stints); err != nil {
		return nil, err
	}

	s := &provider.Session{
		Year:    year,
		Event:   meeting.MeetingName,
		Name:    sessionName,
		Drivers: toDrivers(drivers),
	}
	s.Laps = toLaps(rawLaps, stints, s.Drivers)
	logrus.Debugf("loaded %s %d %s: %d drivers, %d laps", event, year, sessionName, len(s.Drivers), len(s.Laps))
	return s, nil
}

func (c *Client) meetings(ctx context.Context, year int) ([]Meeting, error) {
	var meetings []Meeting
	err := c.get(ctx, "meetings", url.Values{"year": {strconv.Itoa(year)}}, &meetings)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].DateStart < meetings[j].DateStart
	})
	return meetings, nil
}

func toDrivers(in []Driver) []provider.Driver {
	seen := map[int]bool{}
	drivers := []provider.Driver{}
	for _, d := range in {
		if seen[d.DriverNumber] || d.NameAcronym == "" {
			continue
		}
		seen[d.DriverNumber] = true
		drivers = append(drivers, provider.Driver{
			Number:       d.DriverNumber,
			Abbreviation: d.NameAcronym,
			FirstName:    d.FirstName,
			LastName:     d.LastName,
			Team:         d.TeamName,
		})
	}
	return drivers
}

func toLaps(in []Lap, stints []Stint, drivers []provider.Driver) laps.Laps {
	codes := map[int]string{}
	for _, d := range drivers {
		codes[d.Number] = d.Abbreviation
	}
	stintsByDriver := map[int][]Stint{}
	for _, s := range stints {
		stintsByDriver[s.DriverNumber] = append(stintsByDriver[s.DriverNumber], s)
	}

	out := make(laps.Laps, 0, len(in))
	for _, l := range in {
		code, ok := codes[l.DriverNumber]
		if !ok {
			continue
		}
		lap := laps.Lap{
			Driver:   code,
			Number:   l.LapNumber,
			Compound: compound.Unknown,
		}
		if l.LapDuration != nil && *l.LapDuration > 0 {
			lap.LapTime = time.Duration(*l.LapDuration * float64(time.Second))
		}
		for _, s := range stintsByDriver[l.DriverNumber] {
			if s.covers(l.LapNumber) && s.Compound != "" {
				lap.Compound = strings.ToUpper(s.Compound)
				break
			}
		}
		out = append(out, lap)
	}
	return out
}

// get requests an endpoint and decodes its JSON body into v. Rate limiting
// and server errors are retried up to c.retries times.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, v interface{}) error {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, query.Encode())

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			wait := c.backoff * time.Duration(attempt)
			logrus.WithError(lastErr).Warnf("retrying %s in %s (attempt %d/%d)", endpoint, wait, attempt, c.retries)
			select {
			case <-ctx.Done():
				return errors.Wrapf(ctx.Err(), "requesting %s", endpoint)
			case <-time.After(wait):
			}
		}

		body, retry, err := c.do(ctx, u)
		if err == nil {
			if err := json.Unmarshal(body, v); err != nil {
				return errors.Wrapf(err, "decoding %s response", endpoint)
			}
			return nil
		}
		lastErr = err
		if !retry {
			break
		}
	}
	return lastErr
}

func (c *Client) do(ctx context.Context, u string) ([]byte, bool, error) {
	logrus.Debugf("GET %s", u)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, errors.Wrap(err, "building request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, errors.Wrapf(err, "requesting %s", u)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errors.Wrapf(err, "reading %s", u)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// OpenF1 answers 404 when a filter matches nothing
		return []byte("[]"), false, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, true, errors.Errorf("%s: %s", u, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, false, errors.Errorf("%s: %s", u, resp.Status)
	}
	return body, false, nil
}
