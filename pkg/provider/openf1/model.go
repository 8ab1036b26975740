package openf1

// Payloads of the OpenF1 REST API. Only the fields in use are decoded.

type Meeting struct {
	MeetingKey          int    `json:"meeting_key"`
	MeetingName         string `json:"meeting_name"`
	MeetingOfficialName string `json:"meeting_official_name"`
	Location            string `json:"location"`
	CountryName         string `json:"country_name"`
	CircuitShortName    string `json:"circuit_short_name"`
	DateStart           string `json:"date_start"`
	Year                int    `json:"year"`
}

type Session struct {
	SessionKey  int    `json:"session_key"`
	SessionName string `json:"session_name"`
	SessionType string `json:"session_type"`
	MeetingKey  int    `json:"meeting_key"`
	DateStart   string `json:"date_start"`
	Year        int    `json:"year"`
}

type Driver struct {
	DriverNumber int    `json:"driver_number"`
	NameAcronym  string `json:"name_acronym"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FullName     string `json:"full_name"`
	TeamName     string `json:"team_name"`
	SessionKey   int    `json:"session_key"`
}

type Lap struct {
	DriverNumber int      `json:"driver_number"`
	LapNumber    int      `json:"lap_number"`
	LapDuration  *float64 `json:"lap_duration"`
	IsPitOutLap  bool     `json:"is_pit_out_lap"`
	DateStart    *string  `json:"date_start"`
	SessionKey   int      `json:"session_key"`
}

type Stint struct {
	DriverNumber   int    `json:"driver_number"`
	StintNumber    int    `json:"stint_number"`
	LapStart       *int   `json:"lap_start"`
	LapEnd         *int   `json:"lap_end"`
	Compound       string `json:"compound"`
	TyreAgeAtStart *int   `json:"tyre_age_at_start"`
	SessionKey     int    `json:"session_key"`
}

// covers reports whether lap was driven during the stint. An open ended
// stint covers every lap from its start.
func (s Stint) covers(lap int) bool {
	if s.LapStart != nil && lap < *s.LapStart {
		return false
	}
	if s.LapEnd != nil && lap > *s.LapEnd {
		return false
	}
	return true
}
