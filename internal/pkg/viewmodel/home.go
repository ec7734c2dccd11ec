package viewmodel

import (
	"github.com/klimatkollen/klimatkollen/app/models"
)

const (
	SiteTitle       = "Klimatkollen"
	SiteDescription = "Enkel fakta om klimatomställningen"

	// Label shown above the map until a municipality is selected
	DefaultSelection = "Utforska kartan"
)

// EmissionLevel is one municipality as drawn on the map
type EmissionLevel struct {
	Name      string  `json:"name"`
	Emissions float64 `json:"emissions"`
}

// Home contains everything the start page template renders
type Home struct {
	Layout            Layout
	Heading           string
	Lead              string
	MapTitle          string
	MapSubtitle       string
	Selected          string
	MunicipalityNames []string
	EmissionLevels    []EmissionLevel
	Legend            []LegendBand
	GeoJSONURL        string
}

// MunicipalityNames returns the names in source order
func MunicipalityNames(municipalities []models.Municipality) []string {
	names := make([]string, len(municipalities))
	for i, m := range municipalities {
		names[i] = m.Name
	}
	return names
}

// EmissionLevels pairs every name with its average emission change, in source order
func EmissionLevels(municipalities []models.Municipality) []EmissionLevel {
	levels := make([]EmissionLevel, len(municipalities))
	for i, m := range municipalities {
		levels[i] = EmissionLevel{
			Name:      m.Name,
			Emissions: m.HistoricalEmission.EmissionLevelChangeAverage,
		}
	}
	return levels
}

func NewHome(municipalities []models.Municipality, geoJSONURL string) Home {
	return Home{
		Layout: Layout{
			Page:            "home",
			BackgroundColor: "black",
			Meta: Meta{
				Title:       SiteTitle,
				Description: SiteDescription,
				URL:         "/",
			},
		},
		Heading:           SiteTitle,
		Lead:              SiteDescription,
		MapTitle:          "Utsläppsförändring sedan Parisavtalet 2015",
		MapSubtitle:       "För att nå målet behöver klimatutsläppen minska med X% per år,",
		Selected:          DefaultSelection,
		MunicipalityNames: MunicipalityNames(municipalities),
		EmissionLevels:    EmissionLevels(municipalities),
		Legend:            Legend(),
		GeoJSONURL:        geoJSONURL,
	}
}
