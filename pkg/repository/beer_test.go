package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"droscher.com/BeerFinder/pkg/model"
	"droscher.com/BeerFinder/pkg/repository"
)

type BeerTestSuite struct {
	RepositorySuite
}

func TestBeerTestSuite(t *testing.T) {
	suite.Run(t, new(BeerTestSuite))
}

var beerColumns = []string{"id", "name", "brewery", "style", "abv", "ibu", "color", "flavor", "description", "image", "origin", "status"}

func (suite *BeerTestSuite) TestListBeers_ListsNewestFirst() {
	first, second := uuid.New(), uuid.New()

	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "beers" ORDER BY created_at DESC`)).
		WillReturnRows(sqlmock.NewRows(beerColumns).
			AddRow(first.String(), "Golden Sunset IPA", "Craft Masters", "IPA", 6.8, 65, "Dorado", `["Cítrico","Tropical"]`, "", nil, nil, "disponible").
			AddRow(second.String(), "Sunset Lager", "Sol", "Lager", 4.8, nil, "Rubio", `["Suave"]`, "", nil, "México", "agotado"))

	beers, err := suite.repository.ListBeers(context.Background(), nil)
	suite.Require().NoError(err)
	suite.Require().Len(beers, 2)
	suite.Equal(first, beers[0].ID)
	suite.Equal([]string{"Cítrico", "Tropical"}, []string(beers[0].Flavor))
	suite.Equal(pointy.Int64(65), beers[0].IBU)
	suite.Nil(beers[0].Origin)
	suite.Nil(beers[1].IBU)
	suite.Equal("México", *beers[1].Origin)
	suite.Equal(model.StatusSoldOut, beers[1].Status)
}

func (suite *BeerTestSuite) TestListBeers_FiltersByStatus() {
	status := model.StatusAvailable

	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "beers" WHERE status = $1 ORDER BY created_at DESC`)).
		WithArgs(status).
		WillReturnRows(sqlmock.NewRows(beerColumns))

	beers, err := suite.repository.ListBeers(context.Background(), &status)
	suite.Require().NoError(err)
	suite.Empty(beers)
}

func (suite *BeerTestSuite) TestGetBeer_ReturnsNotFound() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers" WHERE id = \$1 (.+)`).WillReturnError(gorm.ErrRecordNotFound)

	beer, err := suite.repository.GetBeer(context.Background(), uuid.New())
	suite.Require().ErrorIs(err, repository.ErrBeerNotFound)
	suite.Nil(beer)
}

func (suite *BeerTestSuite) TestGetBeer_PassesThroughErrors() {
	failure := errors.New("connection reset")
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers"`).WillReturnError(failure)

	beer, err := suite.repository.GetBeer(context.Background(), uuid.New())
	suite.Require().ErrorIs(err, failure)
	suite.Nil(beer)
}

func (suite *BeerTestSuite) TestAddBeer_AssignsID() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "beers" (.+) VALUES (.+)`).WillReturnResult(sqlmock.NewResult(1, 1))
	suite.mock.ExpectCommit()

	beer, err := suite.repository.AddBeer(context.Background(), model.Beer{
		Name:    "Dark Mountain Stout",
		Brewery: "Mountain Brew Co.",
		Style:   "Stout",
		ABV:     7.2,
		IBU:     pointy.Int64(45),
		Color:   "Negro",
		Flavor:  []string{"Chocolate", "Café"},
		Status:  model.StatusAvailable,
	})
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, beer.ID)
	suite.Require().NoError(suite.mock.ExpectationsWereMet())
}

func (suite *BeerTestSuite) TestUpdateBeer_ReturnsNotFoundWhenNothingUpdated() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "beers" SET (.+) WHERE "id" = (.+)`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	beer, err := suite.repository.UpdateBeer(context.Background(), model.Beer{ID: uuid.New(), Name: "Ghost"})
	suite.Require().ErrorIs(err, repository.ErrBeerNotFound)
	suite.Nil(beer)
}

func (suite *BeerTestSuite) TestUpdateBeer_ReloadsBeer() {
	beerID := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "beers" SET (.+) WHERE "id" = (.+)`).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers" WHERE id = \$1 (.+)`).
		WillReturnRows(sqlmock.NewRows(beerColumns).
			AddRow(beerID.String(), "Amber Dreams", "Valley", "Amber Ale", 5.5, 35, "Ámbar", `["Caramelo"]`, "", nil, nil, "disponible"))

	beer, err := suite.repository.UpdateBeer(context.Background(), model.Beer{ID: beerID, Name: "Amber Dreams"})
	suite.Require().NoError(err)
	suite.Equal(beerID, beer.ID)
	suite.Equal("Valley", beer.Brewery)
}

func (suite *BeerTestSuite) TestDeleteBeer_ReturnsDeletedBeer() {
	beerID := uuid.New()

	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers" WHERE id = \$1 (.+)`).
		WillReturnRows(sqlmock.NewRows(beerColumns).
			AddRow(beerID.String(), "Amber Dreams", "Valley", "Amber Ale", 5.5, 35, "Ámbar", `["Caramelo"]`, "", "http://localhost/images/a.png", nil, "disponible"))
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "beers" WHERE id = $1`)).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	beer, err := suite.repository.DeleteBeer(context.Background(), beerID)
	suite.Require().NoError(err)
	suite.Equal("http://localhost/images/a.png", *beer.Image)
	suite.Require().NoError(suite.mock.ExpectationsWereMet())
}

func (suite *BeerTestSuite) TestSetBeerStatus_ReturnsNotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "beers" SET "status"=$1,"updated_at"=$2 WHERE id = $3`)).
		WithArgs(model.StatusSoldOut, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	beer, err := suite.repository.SetBeerStatus(context.Background(), uuid.New(), model.StatusSoldOut)
	suite.Require().ErrorIs(err, repository.ErrBeerNotFound)
	suite.Nil(beer)
}
