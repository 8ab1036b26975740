package apps

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"f1lapvisualiser/pkg/catalog"
	"f1lapvisualiser/pkg/chart"
	"f1lapvisualiser/pkg/helper"
	"f1lapvisualiser/pkg/laps"
	"f1lapvisualiser/pkg/prompt"
	"f1lapvisualiser/pkg/provider"
	"f1lapvisualiser/pkg/share"
)

const ModeQuestion = "Do you want to compare one race or two? "

// questions asked to pick one race.
type questions struct {
	year   string
	venue  string
	driver string
	// unknownVenue is shown when the venue is not in the schedule.
	unknownVenue error
}

var (
	singleQuestions = []questions{
		{year: "Pick a Year: ", venue: "Which venue would you like to pick? ", driver: "Pick a driver code: ", unknownVenue: catalog.ErrUnknownVenue},
	}
	compareQuestions = []questions{
		{year: "Enter the first year: ", venue: "Pick the first venue: ", driver: "Pick a driver code: ", unknownVenue: catalog.ErrVenueNotInYear},
		{year: "Enter the second year: ", venue: "Pick the second venue: ", driver: "Pick a driver code: ", unknownVenue: catalog.ErrVenueNotInYear},
	}
)

type Renderer interface {
	Render(panels ...chart.Panel) (string, error)
}

type Sharer interface {
	Share(ctx context.Context, path string, reports ...share.Report) error
}

type Options struct {
	Years catalog.YearRange
	// Progress shows an indicator while a session loads.
	Progress bool
	// View displays the rendered chart. Optional.
	View func(path string) error
	// Sharer publishes the rendered chart. Optional.
	Sharer Sharer
}

// Race is one driver's clean laps in one race.
type Race struct {
	Year       int
	Venue      string
	DriverCode string
	LastName   string
	Laps       laps.Laps
}

func (r Race) Title() string {
	return chart.Title(r.DriverCode, r.LastName, r.Venue, r.Year)
}

func (r Race) Panel() chart.Panel {
	name := helper.Slug(fmt.Sprintf("%d %s %s", r.Year, r.Venue, r.DriverCode))
	return chart.NewPanel(r.Title(), name, r.Laps)
}

func (r Race) Report() share.Report {
	return share.Report{Title: r.Title(), Summary: r.Laps.Summarize()}
}

// App runs the terminal dialogue from mode selection to the rendered chart.
type App struct {
	prompter *prompt.Prompter
	out      io.Writer
	provider provider.Provider
	renderer Renderer
	opts     Options
}

func NewApp(in io.Reader, out io.Writer, p provider.Provider, r Renderer, opts Options) *App {
	if opts.Years == (catalog.YearRange{}) {
		opts.Years = catalog.DefaultYears()
	}
	return &App{
		prompter: prompt.New(in, out),
		out:      out,
		provider: p,
		renderer: r,
		opts:     opts,
	}
}

// Run asks for the mode and the races, then renders them into one figure.
// It returns prompt.ErrAbandoned when the input ends early.
func (a *App) Run(ctx context.Context) error {
	mode, err := prompt.UntilValid(a.prompter, ModeQuestion, ParseMode)
	if err != nil {
		return err
	}
	logrus.Debugf("mode: %s", mode)

	qs := singleQuestions
	if mode == ModeCompare {
		qs = compareQuestions
	}

	races := make([]Race, 0, len(qs))
	for _, q := range qs {
		race, err := a.collectRace(ctx, q)
		if err != nil {
			return err
		}
		writeSummary(a.out, race)
		races = append(races, race)
	}

	panels := make([]chart.Panel, 0, len(races))
	reports := make([]share.Report, 0, len(races))
	for _, race := range races {
		panels = append(panels, race.Panel())
		reports = append(reports, race.Report())
	}

	path, err := a.renderer.Render(panels...)
	if err != nil {
		return errors.Wrap(err, "rendering chart")
	}
	fmt.Fprintf(a.out, "Chart saved to %s\n", path)

	if a.opts.View != nil {
		if err := a.opts.View(path); err != nil {
			logrus.WithError(err).Warnf("could not open %s", path)
		}
	}

	if a.opts.Sharer != nil {
		if err := a.opts.Sharer.Share(ctx, path, reports...); err != nil {
			logrus.WithError(err).Error("sharing chart")
			fmt.Fprintln(a.out, "Could not share the chart on Telegram.")
		} else {
			fmt.Fprintln(a.out, "Chart shared on Telegram.")
		}
	}
	return nil
}

func (a *App) collectRace(ctx context.Context, q questions) (Race, error) {
	var (
		year   int
		events []string
		err    error
	)
	for {
		year, err = prompt.UntilValid(a.prompter, q.year, a.opts.Years.ParseYear)
		if err != nil {
			return Race{}, err
		}
		events, err = a.provider.EventNames(ctx, year)
		if err != nil {
			return Race{}, errors.Wrapf(err, "loading %d schedule", year)
		}
		if len(events) > 0 {
			break
		}
		fmt.Fprintf(a.out, "No events found for %d, try again.\n", year)
	}
	catalog.WriteEvents(a.out, year, events)

	venue, err := prompt.UntilValid(a.prompter, q.venue, func(input string) (string, error) {
		v, ok := catalog.ResolveVenue(events, input)
		if !ok {
			return "", q.unknownVenue
		}
		return v, nil
	})
	if err != nil {
		return Race{}, err
	}

	session, err := a.loadSession(ctx, year, venue)
	if err != nil {
		return Race{}, err
	}
	codes := session.DriverCodes()
	catalog.WriteDriverCodes(a.out, venue, year, codes)

	var clean laps.Laps
	code, err := prompt.UntilValid(a.prompter, q.driver, func(input string) (string, error) {
		c, ok := catalog.ResolveDriver(codes, input)
		if !ok {
			return "", catalog.ErrUnknownDriver
		}
		clean = session.Laps.Clean(c)
		if len(clean) == 0 {
			return "", errors.Errorf("No quick laps recorded for %s, pick another driver.", c)
		}
		return c, nil
	})
	if err != nil {
		return Race{}, err
	}

	driver, _ := session.Driver(code)
	logrus.Debugf("%s %d %s: %d of %d laps kept", venue, year, code, len(clean), len(session.Laps.PickDriver(code)))
	return Race{
		Year:       year,
		Venue:      venue,
		DriverCode: code,
		LastName:   driver.LastName,
		Laps:       clean,
	}, nil
}

func (a *App) loadSession(ctx context.Context, year int, venue string) (*provider.Session, error) {
	done := func(error) {}
	if a.opts.Progress {
		done = startProgress(a.out, fmt.Sprintf("Loading %s %d", venue, year))
	}
	session, err := a.provider.LoadSession(ctx, year, venue, provider.SessionRace)
	done(err)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s %d", venue, year)
	}
	return session, nil
}
