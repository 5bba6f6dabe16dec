package profile

import "time"

// User is a wallet-authenticated profile.
type User struct {
	WalletAddress  string    `db:"wallet_address" json:"wallet_address" yaml:"wallet_address"`
	Username       string    `db:"username" json:"username" yaml:"username"`
	Points         int64     `db:"points" json:"points" yaml:"points"`
	StudioUnlocked bool      `db:"studio_unlocked" json:"studio_unlocked" yaml:"studio_unlocked"`
	CreatedAt      time.Time `db:"created_at" json:"created_at" yaml:"created_at"`
}
