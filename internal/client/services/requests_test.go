package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/biteshare/internal/client/forms"
	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	maya := f.demo(t, models.RoleStudent)

	r, err := f.requests.Create(ctx, forms.RequestForm{
		Type:        " Money ",
		Title:       "Bus pass",
		Description: "Monthly transit pass",
		Urgency:     "HIGH",
		Amount:      40,
		Items:       []string{"ignored for money"},
	})
	require.NoError(t, err)

	assert.Len(t, r.ID, 2*RequestIDBytes)
	assert.Equal(t, maya.ID, r.StudentID)
	assert.Equal(t, "Maya Rodriguez", r.StudentName)
	assert.Equal(t, models.CategoryMoney, r.Type)
	assert.Equal(t, models.UrgencyHigh, r.Urgency)
	assert.Equal(t, models.StatusPending, r.Status)
	assert.Equal(t, 40, r.Amount)
	assert.Empty(t, r.Items)

	got, err := f.requests.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Title, got.Title)
}

func TestRequestCreate_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		role    models.Role
		form    forms.RequestForm
		wantErr error
	}{
		{
			name:    "donor",
			role:    models.RoleDonor,
			form:    forms.RequestForm{Type: "food", Title: "t", Description: "d", Urgency: "low", Items: []string{"bread"}},
			wantErr: common.ErrForbidden,
		},
		{
			name:    "money without amount",
			role:    models.RoleStudent,
			form:    forms.RequestForm{Type: "money", Title: "t", Description: "d", Urgency: "low"},
			wantErr: common.ErrValidation,
		},
		{
			name:    "food with blank items",
			role:    models.RoleStudent,
			form:    forms.RequestForm{Type: "food", Title: "t", Description: "d", Urgency: "low", Items: []string{" ", ""}},
			wantErr: common.ErrValidation,
		},
		{
			name:    "unknown urgency",
			role:    models.RoleStudent,
			form:    forms.RequestForm{Type: "food", Title: "t", Description: "d", Urgency: "asap", Items: []string{"bread"}},
			wantErr: common.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.demo(t, tt.role)
			_, err := f.requests.Create(context.Background(), tt.form)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestCreate_SignedOut(t *testing.T) {
	f := newFixture(t)
	_, err := f.requests.Create(context.Background(), forms.RequestForm{})
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestRequestListMine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.demo(t, models.RoleStudent)

	all, err := f.requests.ListMine(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a1b2c3d4", all[0].ID)

	pending, err := f.requests.ListMine(ctx, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Weekly Groceries", pending[0].Title)

	counts, err := f.requests.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[models.RequestStatus]int{
		models.StatusPending:   1,
		models.StatusAccepted:  1,
		models.StatusFulfilled: 1,
	}, counts)
}

func TestRequestListOpen_DonorOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.demo(t, models.RoleStudent)
	_, err := f.requests.ListOpen(ctx)
	assert.ErrorIs(t, err, common.ErrForbidden)

	f.demo(t, models.RoleDonor)
	open, err := f.requests.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 4)
	assert.Equal(t, models.UrgencyHigh, open[0].Urgency)
	for _, r := range open {
		assert.True(t, r.Open(), r.ID)
	}
}

func TestRequestGet_OtherStudentsHidden(t *testing.T) {
	f := newFixture(t)
	f.demo(t, models.RoleStudent)

	_, err := f.requests.Get(context.Background(), "d4e5f6a7")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRequestFulfill(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.demo(t, models.RoleStudent)

	require.NoError(t, f.requests.Fulfill(ctx, "b2c3d4e5"))
	r, err := f.requests.Get(ctx, "b2c3d4e5")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFulfilled, r.Status)

	assert.Error(t, f.requests.Fulfill(ctx, "a1b2c3d4"), "pending requests cannot be fulfilled")
	assert.Error(t, f.requests.Fulfill(ctx, "b2c3d4e5"), "already fulfilled")
	assert.ErrorIs(t, f.requests.Fulfill(ctx, "d4e5f6a7"), common.ErrNotFound)
	assert.ErrorIs(t, f.requests.Fulfill(ctx, "ffffffff"), common.ErrNotFound)
}
