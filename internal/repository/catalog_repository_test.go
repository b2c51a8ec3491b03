package repository_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/nikolayk812/storefront-cart/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

type catalogRepositorySuite struct {
	suite.Suite

	repo      port.CatalogRepository
	pool      *pgxpool.Pool
	container *postgres.PostgresContainer
}

func TestCatalogRepositorySuite(t *testing.T) {
	suite.Run(t, new(catalogRepositorySuite))
}

func (suite *catalogRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var err error
	suite.container, suite.pool, err = startPostgres(ctx)
	suite.Require().NoError(err)

	suite.repo, err = repository.NewCatalog(suite.pool)
	suite.Require().NoError(err)
}

func (suite *catalogRepositorySuite) TearDownSuite() {
	suite.NoError(stopPostgres(suite.container, suite.pool))
}

func (suite *catalogRepositorySuite) TearDownTest() {
	_, err := suite.pool.Exec(suite.T().Context(),
		"TRUNCATE TABLE product_variants, products, categories, user_roles CASCADE")
	suite.NoError(err)
}

func (suite *catalogRepositorySuite) TestListProducts() {
	t := suite.T()
	ctx := t.Context()

	shirts := suite.insertCategory("Shirts")
	mugs := suite.insertCategory("Mugs")

	now := time.Now()
	oldShirt := suite.insertProduct("Old shirt", "10", &shirts, false, true, now.Add(-2*time.Hour))
	newShirt := suite.insertProduct("New shirt", "12", &shirts, true, true, now.Add(-time.Hour))
	mug := suite.insertProduct("Mug", "4.50", &mugs, true, true, now)
	suite.insertProduct("Hidden", "1", &mugs, true, false, now)
	loose := suite.insertProduct("Loose", "2", nil, false, true, now.Add(-3*time.Hour))

	all, err := suite.repo.ListProducts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{mug, newShirt, oldShirt, loose}, productIDs(all))
	assert.Equal(t, "Mugs", *all[0].CategoryName)
	assert.Nil(t, all[3].CategoryID)
	assert.True(t, all[0].Price.Equal(decimal.RequireFromString("4.5")))

	onlyShirts, err := suite.repo.ListProducts(ctx, &shirts)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{newShirt, oldShirt}, productIDs(onlyShirts))

	featured, err := suite.repo.ListFeaturedProducts(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{mug, newShirt}, productIDs(featured))

	featured, err = suite.repo.ListFeaturedProducts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{mug}, productIDs(featured))
}

func (suite *catalogRepositorySuite) TestGetProduct() {
	t := suite.T()
	ctx := t.Context()

	id := suite.insertProduct("Shirt", "20", nil, false, true, time.Now())
	_, err := suite.pool.Exec(ctx, `INSERT INTO product_variants (product_id, name, value, price_adjustment)
		VALUES ($1, 'Size', 'M', 0), ($1, 'Size', 'XL', 2.5)`, id)
	require.NoError(t, err)

	tests := []struct {
		name      string
		id        uuid.UUID
		wantError error
		wantMsg   string
	}{
		{name: "with variants: ok", id: id},
		{name: "unknown id: not found", id: uuid.New(), wantError: port.ErrNotFound},
		{name: "nil id: error", id: uuid.Nil, wantMsg: "id is empty"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			product, err := suite.repo.GetProduct(t.Context(), tt.id)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			if tt.wantMsg != "" {
				require.EqualError(t, err, tt.wantMsg)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, "Shirt", product.Name)
			require.Len(t, product.Variants, 2)

			xl, ok := product.FindVariant("XL")
			require.True(t, ok)
			assert.True(t, product.PriceWith(&xl).Equal(decimal.RequireFromString("22.5")))

			item := product.ToCartItem(&xl, 2)
			assert.Equal(t, id.String(), item.ProductID)
			assert.True(t, item.LineTotal().Equal(decimal.NewFromInt(45)))
		})
	}
}

func (suite *catalogRepositorySuite) TestListCategories() {
	t := suite.T()
	ctx := t.Context()

	suite.insertCategory("Shoes")
	suite.insertCategory("Dresses")

	categories, err := suite.repo.ListCategories(ctx)
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "Dresses", categories[0].Name)
	assert.Equal(t, "Shoes", categories[1].Name)

	stats, err := suite.repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{Products: 0, Categories: 2}, stats)
}

func (suite *catalogRepositorySuite) TestSiteSettings() {
	t := suite.T()
	ctx := t.Context()

	settings, err := suite.repo.GetSiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "My Store", settings.StoreName)
	assert.Equal(t, currency.USD, settings.Currency)
	assert.Equal(t, "$", settings.Symbol())

	description := gofakeit.Sentence(6)
	updated := domain.SiteSettings{
		StoreName:        "Loja da Ana",
		StoreDescription: &description,
		WhatsAppNumber:   "+55 11 98765-4321",
		Currency:         currency.BRL,
		CurrencySymbol:   "R$",
	}
	require.NoError(t, suite.repo.UpdateSiteSettings(ctx, updated))

	got, err := suite.repo.GetSiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated.StoreName, got.StoreName)
	assert.Equal(t, description, *got.StoreDescription)
	assert.Equal(t, updated.WhatsAppNumber, got.WhatsAppNumber)
	assert.Equal(t, currency.BRL.String(), got.Currency.String())
	assert.Equal(t, "R$", got.Symbol())

	err = suite.repo.UpdateSiteSettings(ctx, domain.SiteSettings{StoreName: " "})
	require.EqualError(t, err, "store name is empty")
}

func (suite *catalogRepositorySuite) TestIsAdmin() {
	t := suite.T()
	ctx := t.Context()

	admin := uuid.New()
	customer := uuid.New()
	_, err := suite.pool.Exec(ctx, `INSERT INTO user_roles (user_id, role) VALUES ($1, 'admin'), ($2, 'customer')`, admin, customer)
	require.NoError(t, err)

	tests := []struct {
		name   string
		userID uuid.UUID
		want   bool
	}{
		{name: "admin", userID: admin, want: true},
		{name: "customer", userID: customer, want: false},
		{name: "unknown", userID: uuid.New(), want: false},
		{name: "nil", userID: uuid.Nil, want: false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			got, err := suite.repo.IsAdmin(suite.T().Context(), tt.userID)
			require.NoError(suite.T(), err)
			assert.Equal(suite.T(), tt.want, got)
		})
	}
}

func (suite *catalogRepositorySuite) insertCategory(name string) uuid.UUID {
	var id uuid.UUID
	err := suite.pool.QueryRow(suite.T().Context(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	suite.Require().NoError(err)
	return id
}

func (suite *catalogRepositorySuite) insertProduct(name, price string, categoryID *uuid.UUID, featured, active bool, createdAt time.Time) uuid.UUID {
	var id uuid.UUID
	err := suite.pool.QueryRow(suite.T().Context(),
		`INSERT INTO products (name, price, category_id, featured, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		name, decimal.RequireFromString(price), categoryID, featured, active, createdAt).Scan(&id)
	suite.Require().NoError(err)
	return id
}

func productIDs(products []domain.Product) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
