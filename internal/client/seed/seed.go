// Package seed fills a fresh database with the demo accounts, a populated
// leaderboard and a handful of sample requests.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/dmitrijs2005/biteshare/internal/cryptox"
	"github.com/dmitrijs2005/biteshare/internal/dbx"
	"github.com/google/uuid"
)

const (
	DemoDonorEmail   = "donor@example.com"
	DemoStudentEmail = "student@example.com"
	DemoPassword     = "password"
)

// DemoEmail returns the seeded account for role.
func DemoEmail(r models.Role) (string, bool) {
	switch r {
	case models.RoleDonor:
		return DemoDonorEmail, true
	case models.RoleStudent:
		return DemoStudentEmail, true
	}
	return "", false
}

var leaderboard = []struct {
	name  string
	karma int
}{
	{"Sarah Chen", 245},
	{"Mike Rodriguez", 189},
	{"Emily Watson", 142},
	{"James Wilson", 128},
	{"Lisa Park", 115},
	{"Alex Thompson", 98},
	{"Maria Garcia", 87},
	{"David Kim", 76},
	{"Jessica Brown", 65},
}

// ID derives a stable identifier for seeded records.
func ID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("biteshare:seed:"+name)).String()
}

// Seed inserts the demo data in one transaction. It does nothing when the
// demo donor already exists, so calling it on every start is safe.
func Seed(ctx context.Context, db *sql.DB, repos repomanager.RepositoryManager, now time.Time) (bool, error) {
	_, err := repos.Accounts(db).GetByEmail(ctx, DemoDonorEmail)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return false, fmt.Errorf("seed check: %w", err)
	}

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		accounts := repos.Accounts(tx)

		alex, err := account(ID("demo-donor"), DemoDonorEmail, "Alex Johnson", models.RoleDonor, 45, now)
		if err != nil {
			return err
		}
		if err := alex.User.SetProfile(models.DonorProfile{Preferences: models.PreferenceSet{models.CategoryFood, models.CategoryMoney}}); err != nil {
			return err
		}

		maya, err := account(ID("demo-student"), DemoStudentEmail, "Maya Rodriguez", models.RoleStudent, 0, now)
		if err != nil {
			return err
		}
		if err := maya.User.SetProfile(models.StudentProfile{StudentID: "STU12345"}); err != nil {
			return err
		}

		for _, a := range []*models.Account{alex, maya} {
			if err := accounts.Create(ctx, a); err != nil {
				return err
			}
		}

		for _, d := range leaderboard {
			a, err := account(ID(d.name), emailFor(d.name), d.name, models.RoleDonor, d.karma, now)
			if err != nil {
				return err
			}
			if err := a.User.SetProfile(models.DonorProfile{Preferences: models.PreferenceSet{models.CategoryFood}}); err != nil {
				return err
			}
			if err := accounts.Create(ctx, a); err != nil {
				return err
			}
		}

		reqs := sampleRequests(maya.User, now)
		for _, r := range reqs {
			if err := repos.Requests(tx).Create(ctx, r); err != nil {
				return err
			}
		}

		for _, d := range sampleDonations(alex.User, reqs, now) {
			if err := repos.Donations(tx).Create(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	return true, nil
}

func account(id, email, name string, role models.Role, karma int, now time.Time) (*models.Account, error) {
	u, err := models.NewUser(id, email, name, role)
	if err != nil {
		return nil, err
	}
	u.KarmaPoints = karma

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	return &models.Account{
		User:      u,
		Salt:      salt,
		Verifier:  cryptox.MakeVerifier(cryptox.DeriveKey([]byte(DemoPassword), salt)),
		CreatedAt: now,
	}, nil
}

func emailFor(name string) string {
	b := make([]byte, 0, len(name))
	for _, r := range name {
		switch {
		case r == ' ':
			b = append(b, '.')
		case r >= 'A' && r <= 'Z':
			b = append(b, byte(r-'A'+'a'))
		default:
			b = append(b, byte(r))
		}
	}
	return string(b) + "@example.com"
}

const day = 24 * time.Hour

func sampleRequests(student *models.User, now time.Time) []*models.Request {
	return []*models.Request{
		{
			ID: "a1b2c3d4", StudentID: student.ID, StudentName: student.Name,
			Type: models.CategoryFood, Title: "Weekly Groceries",
			Description: "Looking for help with basic groceries for the week. Would appreciate any support with fresh produce and pantry items.",
			Urgency:     models.UrgencyHigh, Status: models.StatusPending,
			Items:     []string{"Fresh vegetables", "Pasta", "Rice", "Protein sources"},
			CreatedAt: now,
		},
		{
			ID: "b2c3d4e5", StudentID: student.ID, StudentName: student.Name,
			Type: models.CategoryMoney, Title: "Textbook Funds",
			Description: "Need help purchasing required textbooks for this semester.",
			Urgency:     models.UrgencyMedium, Status: models.StatusAccepted,
			Amount:    75,
			CreatedAt: now.Add(-2 * day),
		},
		{
			ID: "c3d4e5f6", StudentID: student.ID, StudentName: student.Name,
			Type: models.CategoryEssentials, Title: "Winter Clothing",
			Description: "Moving from a warm climate and need help with winter clothing for the cold season.",
			Urgency:     models.UrgencyLow, Status: models.StatusFulfilled,
			Items:     []string{"Winter jacket", "Warm boots", "Gloves", "Thermal wear"},
			CreatedAt: now.Add(-7 * day),
		},
		{
			ID: "d4e5f6a7", StudentID: ID("Maria Garcia (student)"), StudentName: "Maria Garcia",
			Type: models.CategoryMoney, Title: "Lab Fees",
			Description: "Need help covering this term's chemistry lab fees.",
			Urgency:     models.UrgencyMedium, Status: models.StatusPending,
			Amount:    150,
			CreatedAt: now.Add(-1 * day),
		},
		{
			ID: "e5f6a7b8", StudentID: ID("David Kim (student)"), StudentName: "David Kim",
			Type: models.CategoryEssentials, Title: "Winter Essentials",
			Description: "Recently moved from a warmer climate and need help with winter clothing.",
			Urgency:     models.UrgencyLow, Status: models.StatusPending,
			Items:     []string{"Winter jacket", "Boots", "Gloves"},
			CreatedAt: now.Add(-2 * day),
		},
	}
}

func sampleDonations(donor *models.User, reqs []*models.Request, now time.Time) []*models.Donation {
	return []*models.Donation{
		{
			ID: ID("donation-textbooks"), DonorID: donor.ID, RequestID: reqs[1].ID,
			Amount: 30, Message: "For your textbooks!", CreatedAt: now.Add(-1 * day),
		},
		{
			ID: ID("donation-winter"), DonorID: donor.ID, RequestID: reqs[2].ID,
			Amount: 1, Message: "Stay warm!", CreatedAt: now.Add(-3 * day),
		},
	}
}
