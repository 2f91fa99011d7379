package types

import "strconv"

// Fixed strings shown in the panel's display regions.
const (
	LoadingMessage = "Loading weather data..."
	FailureMessage = "Failed to load weather data"
	UpdatedJustNow = "Updated just now"
)

// DistrictID identifies a city district. 0 is the whole-city aggregate.
type DistrictID int

// CityAggregate selects the whole city rather than a single district.
const CityAggregate DistrictID = 0

func (id DistrictID) String() string {
	return strconv.Itoa(int(id))
}

// Valid reports whether id can be used as a request target.
func (id DistrictID) Valid() bool {
	return id >= 0
}

type ChartPoint struct {
	Time          string  `json:"time"`
	Precipitation float64 `json:"precipitation"`
}

// WeatherResponse is the decoded body of GET /api/weather/{id}.
type WeatherResponse struct {
	Temperature   float64      `json:"temperature"`
	Precipitation float64      `json:"precipitation"`
	Summary       string       `json:"summary"`
	ChartData     []ChartPoint `json:"chart_data"`
	Error         string       `json:"error,omitempty"`
}

// DistrictElement is a selectable district as it appears in the UI.
type DistrictElement struct {
	ID     DistrictID `json:"id"`
	Number string     `json:"number"`
	Name   string     `json:"name"`
}

// PanelState is the panel's single active selection.
type PanelState struct {
	CurrentDistrict DistrictID `json:"currentDistrict"`
	HasSelection    bool       `json:"hasSelection"`
	Loading         bool       `json:"loading"`
	Failed          bool       `json:"failed"`
	Sequence        uint64     `json:"sequence"`
}
