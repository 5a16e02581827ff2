package untappdweb

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"droscher.com/BeerFinder/pkg/model"
)

type BeerJSON struct {
	Description string `json:"description"`
	Brand       struct {
		Name string `json:"name"`
	} `json:"brand"`
	Image struct {
		ContentURL string `json:"contentUrl"`
	} `json:"image"`
	Sku uint64 `json:"sku"`
}

type BeerScraped struct {
	IDLink        string `attr:"href"          selector:"a.label"`
	Name          string `selector:".name > a"`
	Brewery       string `selector:".brewery > a"`
	BreweryIDLink string `attr:"href"          selector:".brewery > a"`
	Style         string `selector:".style"`
	ABV           string `selector:".abv"`
	IBU           string `selector:".ibu"`
}

type BeerContent struct {
	Description string `selector:".beer-descrption-read-more"`
	ImageURL    string `attr:"src"                            selector:"a.label > img"`
}

// FindBeer searches Untappd and scrapes every beer page found. Imported beers start sold out so that an
// admin reviews them before they show up as available.
func (u *UntappedWebIntegration) FindBeer(ctx context.Context, name string) ([]model.Beer, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains("untappd.com"),
		colly.UserAgent(userAgent),
		colly.StdlibContext(ctx),
	)

	var (
		errs         error
		scrapedPages []BeerScraped
	)

	breweries := make(map[string]breweryDetails)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		scraped := BeerScraped{}

		err := element.Unmarshal(&scraped)
		if multierr.AppendInto(&errs, err) {
			u.logger.Error("failed to unmarshal scraped beer", zap.Error(err))

			return
		}

		u.logger.Info("successfully scraped item from results", zap.String("id", lastSegment(scraped.IDLink)), zap.String("name", scraped.Name))

		if _, found := breweries[scraped.BreweryIDLink]; !found && scraped.BreweryIDLink != "" {
			brewery, err := u.getBreweryFromURI(scraped.BreweryIDLink, collector.Clone())
			if err != nil {
				u.logger.Warn("could not scrape brewery", zap.String("uri", scraped.BreweryIDLink), zap.Error(err))
			}

			breweries[scraped.BreweryIDLink] = brewery
		}

		scrapedPages = append(scrapedPages, scraped)
	})

	collector.OnError(func(response *colly.Response, err error) {
		u.logger.Error("error while scraping beer search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	u.logger.Info("scraping query results", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit(baseURL+"search?q="+url.QueryEscape(name)))

	var (
		mu      sync.Mutex
		results []model.Beer
		group   errgroup.Group
	)

	group.SetLimit(parallelPages)

	for _, scraped := range scrapedPages {
		group.Go(func() error {
			beer, err := u.getBeerData(collector.Clone(), scraped, breweries[scraped.BreweryIDLink])

			mu.Lock()
			defer mu.Unlock()

			results = append(results, beer)
			multierr.AppendInto(&errs, err)

			return nil
		})
	}

	_ = group.Wait()

	u.logger.Info("finished scraping query results", zap.Int("results", len(results)), zap.Error(errs))

	return results, errs
}

func (u *UntappedWebIntegration) getBeerData(detailCollector *colly.Collector, scraped BeerScraped, brewery breweryDetails) (model.Beer, error) {
	beer := toBeer(scraped, brewery)

	detailCollector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var beerJSON BeerJSON
		_ = json.Unmarshal([]byte(element.Text), &beerJSON)

		u.logger.Info("successfully scraped beer from JSON data", zap.Uint64("id", beerJSON.Sku), zap.String("description", beerJSON.Description))

		beer.Description = strings.TrimSpace(beerJSON.Description)
		beer.Image = stringPointer(beerJSON.Image.ContentURL)
	})

	detailCollector.OnHTML(".content", func(element *colly.HTMLElement) {
		beerContent := BeerContent{}

		if err := element.Unmarshal(&beerContent); err != nil {
			return
		}

		if len(beer.Description) == 0 {
			beer.Description = strings.TrimSpace(beerContent.Description)
		}

		if beer.Image == nil {
			beer.Image = stringPointer(beerContent.ImageURL)
		}
	})

	idString := lastSegment(scraped.IDLink)
	u.logger.Info("scraping beer page", zap.String("id", idString))

	err := detailCollector.Visit(baseURL + "beer/" + idString)

	return beer, err
}

func toBeer(scraped BeerScraped, brewery breweryDetails) model.Beer {
	beer := model.Beer{
		Name:    strings.TrimSpace(scraped.Name),
		Brewery: strings.TrimSpace(scraped.Brewery),
		Style:   strings.TrimSpace(scraped.Style),
		IBU:     extractIBU(scraped),
		Origin:  brewery.Country,
		Status:  model.StatusSoldOut,
	}

	if brewery.Name != "" {
		beer.Brewery = brewery.Name
	}

	if abv := extractABV(scraped); abv != nil {
		beer.ABV = *abv
	}

	return beer
}

func extractABV(details BeerScraped) *float64 {
	if index := strings.Index(details.ABV, "%"); index >= 0 {
		abv, err := strconv.ParseFloat(strings.TrimSpace(details.ABV[:index]), 64)
		if err != nil {
			return nil
		}

		return &abv
	}

	return nil
}

func extractIBU(details BeerScraped) *int64 {
	value := strings.TrimSpace(details.IBU)
	if value == "" || strings.HasPrefix(value, "N/A") {
		return nil
	}

	ibu, err := strconv.ParseInt(strings.Fields(value)[0], 10, 64)
	if err != nil {
		return nil
	}

	return pointy.Int64(ibu)
}

func lastSegment(link string) string {
	return link[strings.LastIndex(link, "/")+1:]
}
