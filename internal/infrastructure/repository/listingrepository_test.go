package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)           {}
func (noopLogger) Info(msg string, args ...any)            {}
func (noopLogger) Warn(msg string, args ...any)            {}
func (noopLogger) Error(msg string, args ...any)           {}
func (n noopLogger) With(args ...any) logger.Interface     { return n }
func (n noopLogger) Named(name string) logger.Interface    { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...any) {}
func (noopLogger) Infow(msg string, keysAndValues ...any)  {}
func (noopLogger) Warnw(msg string, keysAndValues ...any)  {}
func (noopLogger) Errorw(msg string, keysAndValues ...any) {}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(&models.AgentModel{}, &models.CityModel{}, &models.ListingModel{})
	require.NoError(t, err)

	return gdb
}

func seedAgent(t *testing.T, gdb *gorm.DB, name, email string) uint {
	t.Helper()

	model := &models.AgentModel{
		SID:          "agt_" + email,
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         "agent",
		Active:       true,
	}
	require.NoError(t, gdb.Create(model).Error)
	return model.ID
}

func seedCity(t *testing.T, gdb *gorm.DB, name string) uint {
	t.Helper()

	model := &models.CityModel{Name: name}
	require.NoError(t, gdb.Create(model).Error)
	return model.ID
}

type listingSpec struct {
	cityID      uint
	title       string
	description string
	dealType    listing.DealType
	price       uint64
	attrs       listing.Attributes
	gallery     []string
	publish     bool
}

func createListing(t *testing.T, repo listing.Repository, ownerID uint, spec listingSpec) *listing.Listing {
	t.Helper()

	l, err := listing.NewListing(ownerID, spec.cityID, spec.title, spec.description,
		spec.dealType, spec.price, nil, spec.attrs, "", spec.gallery, publication.StatusDraft)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), l))

	if spec.publish {
		require.NoError(t, l.Submit())
		require.NoError(t, l.Approve())
		require.NoError(t, repo.Update(context.Background(), l))
	}
	return l
}

func TestListingRepository_CreateAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewListingRepository(gdb, noopLogger{})
	ctx := context.Background()

	ownerID := seedAgent(t, gdb, "Dana Tester", "dana@example.com")
	cityID := seedCity(t, gdb, "Springfield")

	created := createListing(t, repo, ownerID, listingSpec{
		cityID:      cityID,
		title:       "Sunny two-bedroom",
		description: "Renovated apartment near the park",
		dealType:    listing.DealSale,
		price:       250000,
		attrs:       listing.Attributes{SizeM2: 84, Rooms: 2, BuildYear: 2015, Floor: 3, Elevator: true},
		gallery:     []string{"a.jpg", "b.jpg"},
	})
	assert.NotZero(t, created.ID())

	t.Run("round trip by sid", func(t *testing.T) {
		found, err := repo.GetBySID(ctx, created.SID())
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.Equal(t, created.ID(), found.ID())
		assert.Equal(t, "Sunny two-bedroom", found.Title())
		assert.Equal(t, listing.DealSale, found.DealType())
		assert.Equal(t, uint64(250000), found.Price())
		assert.Nil(t, found.MonthlyRent())
		assert.Equal(t, uint(84), found.Attrs().SizeM2)
		assert.True(t, found.Attrs().Elevator)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, found.Gallery())
		require.NotNil(t, found.OwnerID())
		assert.Equal(t, ownerID, *found.OwnerID())
		assert.Equal(t, publication.StatusDraft, found.Status())
	})

	t.Run("unknown sid yields nil without error", func(t *testing.T) {
		found, err := repo.GetBySID(ctx, "lst_missing")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("unknown id yields nil without error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestListingRepository_Search(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewListingRepository(gdb, noopLogger{})
	ctx := context.Background()

	ownerID := seedAgent(t, gdb, "Dana Tester", "dana@example.com")
	otherID := seedAgent(t, gdb, "Omar Vega", "omar@example.com")
	springfield := seedCity(t, gdb, "Springfield")
	shelbyville := seedCity(t, gdb, "Shelbyville")

	createListing(t, repo, ownerID, listingSpec{
		cityID: springfield, title: "Sunny two-bedroom", dealType: listing.DealSale,
		price: 250000, attrs: listing.Attributes{Rooms: 2, Parking: true}, publish: true,
	})
	createListing(t, repo, ownerID, listingSpec{
		cityID: shelbyville, title: "Downtown studio", dealType: listing.DealRent,
		price: 90000, attrs: listing.Attributes{Rooms: 1}, publish: true,
	})
	createListing(t, repo, otherID, listingSpec{
		cityID: springfield, title: "Suburban villa", dealType: listing.DealSale,
		price: 780000, attrs: listing.Attributes{Rooms: 5, Parking: true}, publish: true,
	})
	createListing(t, repo, ownerID, listingSpec{
		cityID: springfield, title: "Unfinished loft", dealType: listing.DealSale,
		price: 120000,
	})

	t.Run("public visibility excludes drafts", func(t *testing.T) {
		results, total, err := repo.Search(ctx, listing.Filter{}, listing.PublishedOnly(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, results, 3)
		for _, l := range results {
			assert.Equal(t, publication.StatusPublished, l.Status())
		}
	})

	t.Run("owner visibility includes own drafts only", func(t *testing.T) {
		results, total, err := repo.Search(ctx, listing.Filter{}, listing.OwnerVisibility(ownerID), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		for _, l := range results {
			require.NotNil(t, l.OwnerID())
			assert.Equal(t, ownerID, *l.OwnerID())
		}
	})

	t.Run("filter by city", func(t *testing.T) {
		results, total, err := repo.Search(ctx, listing.Filter{CityID: &shelbyville}, listing.PublishedOnly(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, "Downtown studio", results[0].Title())
	})

	t.Run("filter by deal type", func(t *testing.T) {
		rent := listing.DealRent
		_, total, err := repo.Search(ctx, listing.Filter{DealType: &rent}, listing.PublishedOnly(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("price range", func(t *testing.T) {
		min, max := uint64(100000), uint64(500000)
		results, total, err := repo.Search(ctx, listing.Filter{PriceMin: &min, PriceMax: &max}, listing.PublishedOnly(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, "Sunny two-bedroom", results[0].Title())
	})

	t.Run("free text matches owner name", func(t *testing.T) {
		results, total, err := repo.Search(ctx, listing.Filter{Search: "  OMAR "}, listing.PublishedOnly(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, "Suburban villa", results[0].Title())
	})

	t.Run("amenity flag", func(t *testing.T) {
		parking := true
		_, total, err := repo.Search(ctx, listing.Filter{Parking: &parking}, listing.PublishedOnly(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("out of range page clamps to the last page", func(t *testing.T) {
		results, total, err := repo.Search(ctx, listing.Filter{}, listing.PublishedOnly(), 99, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, results, 1)
	})

	t.Run("no match stays on the first empty page", func(t *testing.T) {
		min := uint64(5000000)
		results, total, err := repo.Search(ctx, listing.Filter{PriceMin: &min}, listing.PublishedOnly(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, results)
	})
}

func TestListingRepository_CountByStatus(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewListingRepository(gdb, noopLogger{})
	ctx := context.Background()

	ownerID := seedAgent(t, gdb, "Dana Tester", "dana@example.com")
	cityID := seedCity(t, gdb, "Springfield")

	createListing(t, repo, ownerID, listingSpec{cityID: cityID, title: "One", dealType: listing.DealSale, price: 1, publish: true})
	createListing(t, repo, ownerID, listingSpec{cityID: cityID, title: "Two", dealType: listing.DealSale, price: 1, publish: true})
	createListing(t, repo, ownerID, listingSpec{cityID: cityID, title: "Three", dealType: listing.DealSale, price: 1})

	counts, err := repo.CountByStatus(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[publication.StatusPublished])
	assert.Equal(t, int64(1), counts[publication.StatusDraft])
	assert.Zero(t, counts[publication.StatusPendingReview])
}

func TestListingRepository_Bounds(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewListingRepository(gdb, noopLogger{})
	ctx := context.Background()

	ownerID := seedAgent(t, gdb, "Dana Tester", "dana@example.com")
	cityID := seedCity(t, gdb, "Springfield")

	t.Run("empty catalog has zero bounds", func(t *testing.T) {
		bounds, err := repo.Bounds(ctx)
		require.NoError(t, err)
		assert.Equal(t, listing.SearchBounds{}, bounds)
	})

	createListing(t, repo, ownerID, listingSpec{
		cityID: cityID, title: "Small", dealType: listing.DealSale, price: 100000,
		attrs: listing.Attributes{SizeM2: 60, Rooms: 2}, publish: true,
	})
	createListing(t, repo, ownerID, listingSpec{
		cityID: cityID, title: "Large", dealType: listing.DealSale, price: 900000,
		attrs: listing.Attributes{SizeM2: 240, Rooms: 6}, publish: true,
	})
	// Drafts must not widen the public sliders.
	createListing(t, repo, ownerID, listingSpec{
		cityID: cityID, title: "Palace draft", dealType: listing.DealSale, price: 9000000,
		attrs: listing.Attributes{SizeM2: 1200, Rooms: 20},
	})

	bounds, err := repo.Bounds(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(900000), bounds.MaxPrice)
	assert.Equal(t, uint(240), bounds.MaxSize)
	assert.Equal(t, uint(6), bounds.MaxRooms)
}

func TestListingRepository_ClearOwner(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewListingRepository(gdb, noopLogger{})
	ctx := context.Background()

	ownerID := seedAgent(t, gdb, "Dana Tester", "dana@example.com")
	cityID := seedCity(t, gdb, "Springfield")

	published := createListing(t, repo, ownerID, listingSpec{cityID: cityID, title: "Keeps status", dealType: listing.DealSale, price: 1, publish: true})

	require.NoError(t, repo.ClearOwner(ctx, ownerID))

	found, err := repo.GetByID(ctx, published.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Nil(t, found.OwnerID())
	assert.Equal(t, publication.StatusPublished, found.Status())
}

func TestListingRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewListingRepository(gdb, noopLogger{})
	ctx := context.Background()

	ownerID := seedAgent(t, gdb, "Dana Tester", "dana@example.com")
	cityID := seedCity(t, gdb, "Springfield")

	l := createListing(t, repo, ownerID, listingSpec{cityID: cityID, title: "Doomed", dealType: listing.DealSale, price: 1})

	require.NoError(t, repo.Delete(ctx, l.ID()))

	found, err := repo.GetByID(ctx, l.ID())
	assert.NoError(t, err)
	assert.Nil(t, found)

	err = repo.Delete(ctx, l.ID())
	assert.ErrorIs(t, err, listing.ErrListingNotFound)
}
