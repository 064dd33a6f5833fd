package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/internal/db"
)

func TestOrderRepository_CreateAndFind(t *testing.T) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(database)

	repo := NewOrderRepository(database)
	order := &model.Order{
		OrderNumber:       model.NewOrderNumber(time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)),
		CustomerName:      "홍길동",
		CustomerEmail:     "hong@example.com",
		PrintType:         model.PrintBlackWhite,
		PrintMethod:       model.PrintMethodSingle,
		BindingType:       model.BindingRing,
		Pages:             10,
		Quantity:          1,
		UnitPrice:         2600,
		TotalPrice:        2340,
		TaxAmount:         260,
		TotalPriceWithTax: 2600,
		Status:            model.OrderStatusQuoted,
	}

	require.NoError(t, repo.Create(order))
	assert.NotZero(t, order.ID)
	assert.Equal(t, "ONN20260831103000", order.OrderNumber)

	found, err := repo.FindByOrderNumber("ONN20260831103000")
	require.NoError(t, err)
	assert.Equal(t, "홍길동", found.CustomerName)
	assert.Equal(t, model.OrderStatusQuoted, found.Status)

	byID, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, byID.OrderNumber)
}

func TestOrderRepository_FindAllWithFilter(t *testing.T) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(database)

	repo := NewOrderRepository(database)
	for i, status := range []model.OrderStatus{
		model.OrderStatusQuoted,
		model.OrderStatusQuoted,
		model.OrderStatusConfirmed,
	} {
		require.NoError(t, repo.Create(&model.Order{
			OrderNumber: model.NewOrderNumber(time.Date(2026, 8, 31, 10, 0, i, 0, time.UTC)),
			PrintType:   model.PrintBlackWhite,
			PrintMethod: model.PrintMethodSingle,
			BindingType: model.BindingRing,
			Pages:       10,
			Quantity:    1,
			Status:      status,
		}))
	}

	quoted, total, err := repo.FindAll(OrderFilter{Status: model.OrderStatusQuoted})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, quoted, 2)

	all, total, err := repo.FindAll(OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
}

func TestLeadRepository_UpsertIncrementsSearchCount(t *testing.T) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(database)

	repo := NewLeadRepository(database)

	first := &model.MarketingLead{
		CustomerName:  "홍길동",
		CustomerEmail: "hong@example.com",
		Keyword:       "논문 제본",
	}
	require.NoError(t, repo.Upsert(first))
	assert.Equal(t, int64(1), first.SearchCount)

	second := &model.MarketingLead{
		CustomerName:  "홍길동",
		CustomerEmail: "hong@example.com",
		Keyword:       "논문 제본",
	}
	require.NoError(t, repo.Upsert(second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(2), second.SearchCount)

	// 키워드가 다르면 새 리드
	other := &model.MarketingLead{
		CustomerEmail: "hong@example.com",
		Keyword:       "소책자 인쇄",
	}
	require.NoError(t, repo.Upsert(other))
	assert.NotEqual(t, first.ID, other.ID)

	_, total, err := repo.FindAll(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestLeadRepository_FindSince(t *testing.T) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(database)

	repo := NewLeadRepository(database)
	require.NoError(t, repo.Upsert(&model.MarketingLead{
		CustomerEmail: "a@example.com",
		Keyword:       "제본",
	}))

	recent, err := repo.FindSince(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	none, err := repo.FindSince(time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLeadRepository_TopKeywords(t *testing.T) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(database)

	repo := NewLeadRepository(database)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Upsert(&model.MarketingLead{
			CustomerEmail: "a@example.com",
			Keyword:       "논문 제본",
		}))
	}
	require.NoError(t, repo.Upsert(&model.MarketingLead{
		CustomerEmail: "b@example.com",
		Keyword:       "소책자 인쇄",
	}))

	counts, err := repo.TopKeywords(10)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "논문 제본", counts[0].Keyword)
	assert.Equal(t, int64(3), counts[0].SearchCount)
}
