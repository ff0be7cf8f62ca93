package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pocket-pm-be/internal/dto"
	"pocket-pm-be/internal/pkg/apperrors"
	"pocket-pm-be/internal/repository/memory"
)

func newFeatureServiceForTest() (IFeatureService, *memory.Store) {
	store := memory.NewStore()
	return NewFeatureService(memory.NewRepositoryFactory(store)), store
}

func createRequest(title string) *dto.CreateFeatureRequest {
	return &dto.CreateFeatureRequest{
		Title:       title,
		Description: "desc",
		Reach:       5,
		Impact:      5,
		Confidence:  5,
		Effort:      5,
	}
}

func TestFeatureCreateComputesScoreAndAppendsOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFeatureServiceForTest()
	userId := uuid.New()

	first, err := svc.Create(ctx, userId, &dto.CreateFeatureRequest{
		Title:       "auth",
		Description: "login",
		Reach:       9,
		Impact:      8,
		Confidence:  9,
		Effort:      6,
	})
	assert.NoError(t, err)
	assert.Equal(t, 108.0, first.Score)
	assert.Equal(t, 0, first.Order)
	assert.Equal(t, "should", first.Priority)

	second, err := svc.Create(ctx, userId, createRequest("export"))
	assert.NoError(t, err)
	assert.Equal(t, 1, second.Order)

	third, err := svc.Create(ctx, userId, createRequest("search"))
	assert.NoError(t, err)
	assert.Equal(t, 2, third.Order)
}

func TestFeatureCreateKeepsExplicitPriority(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFeatureServiceForTest()

	req := createRequest("auth")
	req.Priority = "must"

	res, err := svc.Create(ctx, uuid.New(), req)
	assert.NoError(t, err)
	assert.Equal(t, "must", res.Priority)
}

func TestFeatureListSortedByOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFeatureServiceForTest()
	userId := uuid.New()

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, userId, createRequest(title))
		assert.NoError(t, err)
	}

	features, err := svc.List(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, features, 3)
	for i, f := range features {
		assert.Equal(t, i, f.Order)
	}
}

func TestFeatureUpdateOrderUnknownIdReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFeatureServiceForTest()
	userId := uuid.New()

	_, err := svc.Create(ctx, userId, createRequest("a"))
	assert.NoError(t, err)

	newOrder := 0
	_, err = svc.UpdateOrder(ctx, userId, &dto.UpdateFeatureOrderRequest{Id: 999, Order: &newOrder})

	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)

	// Store untouched
	features, err := svc.List(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, features, 1)
	assert.Equal(t, 0, features[0].Order)
}

func TestFeatureUpdateOrderShiftsCollision(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFeatureServiceForTest()
	userId := uuid.New()

	a, _ := svc.Create(ctx, userId, createRequest("a"))
	b, _ := svc.Create(ctx, userId, createRequest("b"))
	c, _ := svc.Create(ctx, userId, createRequest("c"))

	// Move c to the front; a and b shift up
	newOrder := 0
	res, err := svc.UpdateOrder(ctx, userId, &dto.UpdateFeatureOrderRequest{Id: c.Id, Order: &newOrder})
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Order)

	features, err := svc.List(ctx, userId)
	assert.NoError(t, err)
	got := map[int]int{}
	for _, f := range features {
		got[f.Id] = f.Order
	}
	assert.Equal(t, map[int]int{c.Id: 0, a.Id: 1, b.Id: 2}, got)
}

func TestFeatureUpdateOrderSamePositionIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFeatureServiceForTest()
	userId := uuid.New()

	a, _ := svc.Create(ctx, userId, createRequest("a"))
	b, _ := svc.Create(ctx, userId, createRequest("b"))

	sameOrder := a.Order
	res, err := svc.UpdateOrder(ctx, userId, &dto.UpdateFeatureOrderRequest{Id: a.Id, Order: &sameOrder})
	assert.NoError(t, err)
	assert.Equal(t, a.Order, res.Order)

	features, err := svc.List(ctx, userId)
	assert.NoError(t, err)
	got := map[int]int{}
	for _, f := range features {
		got[f.Id] = f.Order
	}
	assert.Equal(t, map[int]int{a.Id: 0, b.Id: 1}, got)
}

func TestFeatureUpdateOrderToFreeSlotDoesNotShift(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFeatureServiceForTest()
	userId := uuid.New()

	a, _ := svc.Create(ctx, userId, createRequest("a"))
	b, _ := svc.Create(ctx, userId, createRequest("b"))

	// Slot 5 is empty; nothing else moves
	newOrder := 5
	_, err := svc.UpdateOrder(ctx, userId, &dto.UpdateFeatureOrderRequest{Id: a.Id, Order: &newOrder})
	assert.NoError(t, err)

	features, err := svc.List(ctx, userId)
	assert.NoError(t, err)
	got := map[int]int{}
	for _, f := range features {
		got[f.Id] = f.Order
	}
	assert.Equal(t, map[int]int{b.Id: 1, a.Id: 5}, got)
}

func TestFeatureDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFeatureServiceForTest()
	userId := uuid.New()

	a, _ := svc.Create(ctx, userId, createRequest("a"))
	b, _ := svc.Create(ctx, userId, createRequest("b"))

	assert.NoError(t, svc.Delete(ctx, userId, a.Id))
	assert.NoError(t, svc.Delete(ctx, userId, a.Id))
	assert.NoError(t, svc.Delete(ctx, userId, 12345))

	// Remaining order is untouched
	features, err := svc.List(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, features, 1)
	assert.Equal(t, b.Id, features[0].Id)
	assert.Equal(t, 1, features[0].Order)
}

func TestFeatureImportPartialSuccess(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFeatureServiceForTest()
	userId := uuid.New()

	res, err := svc.Import(ctx, userId, &dto.ImportFeaturesRequest{
		Rows: []dto.ImportFeatureRow{
			{Title: "good one", Description: "d", Reach: 5, Impact: 5, Confidence: 5, Effort: 5},
			{Title: "", Description: "missing title", Reach: 5, Impact: 5, Confidence: 5, Effort: 5},
			{Title: "out of range", Description: "d", Reach: 11, Impact: 5, Confidence: 5, Effort: 5},
			{Title: "good two", Description: "d", Reach: 1, Impact: 10, Confidence: 3, Effort: 2},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.CreatedCount)
	assert.Len(t, res.Skipped, 2)
	assert.Equal(t, 1, res.Skipped[0].Index)
	assert.Equal(t, 2, res.Skipped[1].Index)

	features, err := svc.List(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, features, 2)
	assert.Equal(t, "good one", features[0].Title)
	assert.Equal(t, "good two", features[1].Title)
}
