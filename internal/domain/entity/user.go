package entity

import "time"

// Role valid untuk User.
const (
	RoleAdmin  = "admin"
	RoleGudang = "gudang" // staf gudang: bahan, pembelian, penerimaan
	RoleDapur  = "dapur"  // staf dapur: resep, produksi
)

// Status user.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// User pengguna sistem.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, tidak pernah plaintext setelah persist
	Name         string
	Role         string // admin, gudang, dapur
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
