package core

import "time"

// Seed is the compiled-in initial contents of the simulated database.
type Seed struct {
	Items        []Item
	Categories   []string
	User         User
	Transactions []Transaction
}

// PresetProfile returns the stock identity for a role. OwnedItemIDs is
// always empty here; callers preserve ownership across switches themselves.
func PresetProfile(role Role) (User, error) {
	switch role {
	case RoleUser:
		return User{
			ID:        "user-123",
			Username:  "PlayerOne",
			Balance:   1500,
			AvatarURL: "https://picsum.photos/seed/useravatar/100/100",
			Role:      RoleUser,
		}, nil
	case RoleAdmin:
		return User{
			ID:        "admin-001",
			Username:  "StoreAdmin",
			Balance:   99999,
			AvatarURL: "https://picsum.photos/seed/adminavatar/100/100",
			Role:      RoleAdmin,
		}, nil
	default:
		return User{}, ErrUnknownRole
	}
}

// DefaultSeed returns the stock catalog, the regular user as the initial
// session identity, and a few historical transactions so the dashboard is
// non-empty on first load.
func DefaultSeed() Seed {
	user, _ := PresetProfile(RoleUser)
	now := time.Now()
	return Seed{
		Categories: []string{SentinelCategory, "TSB", "BF", "BASZ"},
		User:       user,
		Items: []Item{
			{ID: "tsb-001", Title: "Cosmic Gauntlet", Description: "A powerful gauntlet that channels cosmic energy.", Price: 1200, ImageURL: "https://picsum.photos/seed/tsb1/400/300", Category: "TSB"},
			{ID: "tsb-002", Title: "Shadow Cloak", Description: "Become one with the shadows, moving unseen.", Price: 850, ImageURL: "https://picsum.photos/seed/tsb2/400/300", Category: "TSB"},
			{ID: "tsb-003", Title: "Saitama Emote", Description: "Unleash the \"OK\" emote after a decisive victory.", Price: 400, ImageURL: "https://picsum.photos/seed/tsb3/400/300", Category: "TSB"},
			{ID: "bf-001", Title: "Infinity Edge Blade", Description: "A legendary blade that grows sharper with every deflection.", Price: 1500, ImageURL: "https://picsum.photos/seed/bf1/400/300", Category: "BF"},
			{ID: "bf-002", Title: "Phantom Dodge", Description: "A special ability to phase through incoming projectiles.", Price: 950, ImageURL: "https://picsum.photos/seed/bf2/400/300", Category: "BF"},
			{ID: "bf-003", Title: "Chrono Ball Skin", Description: "Make the ball look like a swirling vortex of time.", Price: 500, ImageURL: "https://picsum.photos/seed/bf3/400/300", Category: "BF"},
			{ID: "basz-001", Title: "Gravity Spell", Description: "Manipulate the forces of gravity to crush your foes.", Price: 1100, ImageURL: "https://picsum.photos/seed/basz1/400/300", Category: "BASZ"},
			{ID: "basz-002", Title: "Fire Infusion", Description: "Permanently infuse any weapon with the power of fire.", Price: 750, ImageURL: "https://picsum.photos/seed/basz2/400/300", Category: "BASZ"},
			{ID: "basz-003", Title: "Gladiator Armor Set", Description: "Sturdy and stylish armor fit for a champion of the arena.", Price: 1300, ImageURL: "https://picsum.photos/seed/basz3/400/300", Category: "BASZ"},
			{ID: "tsb-004", Title: "Limitless Energy", Description: "A permanent boost to your energy regeneration.", Price: 2000, ImageURL: "https://picsum.photos/seed/tsb4/400/300", Category: "TSB"},
			{ID: "bf-004", Title: "Cybernetic Trail", Description: "Leave a stunning digital trail as you move.", Price: 350, ImageURL: "https://picsum.photos/seed/bf4/400/300", Category: "BF"},
			{ID: "basz-004", Title: "Dagger of Swiftness", Description: "A lightweight dagger that allows for incredibly fast strikes.", Price: 600, ImageURL: "https://picsum.photos/seed/basz4/400/300", Category: "BASZ"},
		},
		Transactions: []Transaction{
			{
				ID:       "txn-3",
				Date:     now.Add(-5 * time.Hour),
				UserID:   "user-hist-1",
				Username: "OldPlayer",
				Lines: []TransactionLine{
					{ItemID: "bf-001", Title: "Infinity Edge Blade", Quantity: 1, UnitPrice: 1500},
				},
				TotalAmount: 1500,
			},
			{
				ID:       "txn-2",
				Date:     now.Add(-24 * time.Hour),
				UserID:   "user-hist-2",
				Username: "NewbieGamer",
				Lines: []TransactionLine{
					{ItemID: "tsb-003", Title: "Saitama Emote", Quantity: 2, UnitPrice: 400},
				},
				TotalAmount: 800,
			},
			{
				ID:       "txn-1",
				Date:     now.Add(-48 * time.Hour),
				UserID:   "user-hist-1",
				Username: "OldPlayer",
				Lines: []TransactionLine{
					{ItemID: "bf-001", Title: "Infinity Edge Blade", Quantity: 1, UnitPrice: 1500},
					{ItemID: "basz-002", Title: "Fire Infusion", Quantity: 1, UnitPrice: 750},
				},
				TotalAmount: 2250,
			},
		},
	}
}
