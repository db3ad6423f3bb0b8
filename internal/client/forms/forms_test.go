package forms

import (
	"testing"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	require.ErrorIs(t, err, common.ErrValidation)
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve.Fields
}

func TestSignupForm(t *testing.T) {
	ok := SignupForm{Name: "Maya", Email: "maya@example.com", Password: "password", Role: "student"}
	assert.NoError(t, Validate(ok))

	got := fields(t, Validate(SignupForm{Email: "nope", Password: "123", Role: "admin"}))
	assert.Equal(t, map[string]string{
		"name":     "is required",
		"email":    "must be a valid email address",
		"password": "must be at least 6 characters",
		"role":     "must be one of: student, donor",
	}, got)
}

func TestLoginForm(t *testing.T) {
	assert.NoError(t, Validate(LoginForm{Email: "donor@example.com", Password: "password"}))
	got := fields(t, Validate(LoginForm{}))
	assert.Contains(t, got, "email")
	assert.Contains(t, got, "password")
}

func TestStudentVerificationForm(t *testing.T) {
	assert.NoError(t, Validate(StudentVerificationForm{StudentID: "any format 123"}))
	assert.Equal(t, map[string]string{"studentId": "is required"}, fields(t, Validate(StudentVerificationForm{})))
}

func TestPreferencesForm(t *testing.T) {
	assert.NoError(t, Validate(PreferencesForm{Preferences: models.PreferenceSet{models.CategoryFood}}))
	assert.Equal(t, map[string]string{"preferences": "select at least 1"}, fields(t, Validate(PreferencesForm{})))
}

func TestRequestForm(t *testing.T) {
	tests := []struct {
		name string
		form RequestForm
		want map[string]string
	}{
		{
			name: "food with items",
			form: RequestForm{Type: "food", Title: "Weekly Groceries", Description: "help", Urgency: "high", Items: []string{"Pasta"}},
		},
		{
			name: "money with amount",
			form: RequestForm{Type: "money", Title: "Textbook Funds", Description: "books", Urgency: "medium", Amount: 75},
		},
		{
			name: "money without amount",
			form: RequestForm{Type: "money", Title: "T", Description: "D", Urgency: "low"},
			want: map[string]string{"amount": "money requests need an amount greater than 0"},
		},
		{
			name: "essentials with only blank items",
			form: RequestForm{Type: "essentials", Title: "T", Description: "D", Urgency: "low", Items: []string{" ", ""}},
			want: map[string]string{"items": "add at least one item"},
		},
		{
			name: "bad enums and missing text",
			form: RequestForm{Type: "books", Urgency: "asap"},
			want: map[string]string{
				"type":        "must be one of: food, money, essentials",
				"urgency":     "must be one of: low, medium, high",
				"title":       "is required",
				"description": "is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.form
			f.Normalize()
			err := Validate(f)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, fields(t, err))
		})
	}
}

func TestRequestForm_Normalize(t *testing.T) {
	f := RequestForm{Type: " Food ", Urgency: "HIGH", Title: "  t ", Items: []string{" Rice ", "", "Beans"}}
	f.Normalize()
	assert.Equal(t, "food", f.Type)
	assert.Equal(t, "high", f.Urgency)
	assert.Equal(t, "t", f.Title)
	assert.Equal(t, []string{"Rice", "Beans"}, f.Items)
}

func TestDonationForm(t *testing.T) {
	assert.NoError(t, Validate(DonationForm{Amount: 25, Message: "For your textbooks!"}))
	assert.Equal(t, map[string]string{"amount": "must be greater than 0"}, fields(t, Validate(DonationForm{})))
}
