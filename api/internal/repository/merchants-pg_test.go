package repository

import (
	"testing"
	"time"

	"merchant/api/internal/domain"
	"merchant/api/internal/infra/postgres"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := postgres.InitTest()
	require.NoError(t, err)
	return db
}

func fakeMerchant() *domain.Merchants {
	return &domain.Merchants{
		Name:         gofakeit.Company(),
		Email:        gofakeit.Email(),
		BusinessType: domain.BusinessTypePtr(domain.BusinessTypeSmall),
	}
}

func TestMerchantsRepoCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	r := InitMerchantsRepo()

	m := fakeMerchant()
	require.NoError(t, r.Create(db, m))
	require.NotZero(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())
	assert.False(t, m.UpdatedAt.IsZero())

	t.Run("Should find by id", func(t *testing.T) {
		found, err := r.FindByID(db, m.ID)
		require.NoError(t, err)
		assert.Equal(t, m.Email, found.Email)
		require.NotNil(t, found.BusinessType)
		assert.Equal(t, domain.BusinessTypeSmall, *found.BusinessType)
	})

	t.Run("Should find by email", func(t *testing.T) {
		found, err := r.FindByEmail(db, m.Email)
		require.NoError(t, err)
		assert.Equal(t, m.ID, found.ID)
	})

	t.Run("Should report missing rows as not found", func(t *testing.T) {
		_, err := r.FindByID(db, m.ID+100)
		assert.True(t, postgres.IsNotFound(err))

		_, err = r.FindByEmail(db, "missing@example.com")
		assert.True(t, postgres.IsNotFound(err))
	})

	t.Run("Should check email existence", func(t *testing.T) {
		exists, err := r.ExistsByEmail(db, m.Email)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = r.ExistsByEmail(db, "missing@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Should not match any row with an empty email", func(t *testing.T) {
		_, err := r.FindByEmail(db, "")
		assert.True(t, postgres.IsNotFound(err))

		exists, err := r.ExistsByEmail(db, "")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestMerchantsRepoUniqueEmail(t *testing.T) {
	db := newTestDB(t)
	r := InitMerchantsRepo()

	m := fakeMerchant()
	require.NoError(t, r.Create(db, m))

	dup := fakeMerchant()
	dup.Email = m.Email
	err := r.Create(db, dup)
	require.Error(t, err)
	assert.True(t, postgres.IsDuplicateKey(err))
}

func TestMerchantsRepoUpdateDetailsKeepsCreateOnlyColumns(t *testing.T) {
	db := newTestDB(t)
	r := InitMerchantsRepo()

	m := fakeMerchant()
	require.NoError(t, r.Create(db, m))
	created, err := r.FindByID(db, m.ID)
	require.NoError(t, err)

	changed := *created
	changed.Name = "New"
	changed.Email = "changed@example.com"
	changed.CreatedAt = time.Now().Add(24 * time.Hour)
	changed.BusinessType = domain.BusinessTypePtr(domain.BusinessTypeLarge)
	require.NoError(t, r.UpdateDetails(db, &changed))

	found, err := r.FindByID(db, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", found.Name)
	assert.Equal(t, created.Email, found.Email)
	assert.True(t, created.CreatedAt.Equal(found.CreatedAt))
	require.NotNil(t, found.BusinessType)
	assert.Equal(t, domain.BusinessTypeLarge, *found.BusinessType)
}

func TestMerchantsRepoUpdateDetailsNeverInserts(t *testing.T) {
	db := newTestDB(t)
	r := InitMerchantsRepo()

	m := fakeMerchant()
	require.NoError(t, r.Create(db, m))
	loaded, err := r.FindByID(db, m.ID)
	require.NoError(t, err)

	require.NoError(t, r.DeleteByID(db, m.ID))

	loaded.Name = "Resurrected"
	err = r.UpdateDetails(db, loaded)
	assert.True(t, postgres.IsNotFound(err))

	all, err := r.FindAll(db)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMerchantsRepoFindAllAndDelete(t *testing.T) {
	db := newTestDB(t)
	r := InitMerchantsRepo()

	all, err := r.FindAll(db)
	require.NoError(t, err)
	assert.Empty(t, all)

	m := fakeMerchant()
	require.NoError(t, r.Create(db, m))

	all, err = r.FindAll(db)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, r.DeleteByID(db, m.ID))
	require.NoError(t, r.DeleteByID(db, m.ID), "deleting a missing id is a no-op")

	all, err = r.FindAll(db)
	require.NoError(t, err)
	assert.Empty(t, all)
}
