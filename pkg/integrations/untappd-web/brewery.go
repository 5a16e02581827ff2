package untappdweb

import (
	"encoding/json"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
)

type BreweryJSON struct {
	Name    string `json:"name"`
	Address struct {
		AddressLocality string `json:"addressLocality"`
		AddressCountry  string `json:"addressCountry"`
	} `json:"address"`
}

type breweryDetails struct {
	Name    string
	Country *string
}

func (u *UntappedWebIntegration) getBreweryFromURI(uri string, collector *colly.Collector) (breweryDetails, error) {
	var (
		errs    error
		brewery breweryDetails
	)

	collector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var breweryJSON BreweryJSON
		if err := json.Unmarshal([]byte(element.Text), &breweryJSON); err != nil {
			return
		}

		brewery = parseBrewery(breweryJSON)
	})

	multierr.AppendInto(&errs, collector.Visit(baseURL+strings.TrimPrefix(uri, "/")))

	return brewery, errs
}

func parseBrewery(breweryJSON BreweryJSON) breweryDetails {
	return breweryDetails{
		Name:    strings.TrimSpace(breweryJSON.Name),
		Country: stringPointer(strings.TrimSpace(breweryJSON.Address.AddressCountry)),
	}
}

func stringPointer(value string) *string {
	if len(value) > 0 {
		return &value
	}

	return nil
}
