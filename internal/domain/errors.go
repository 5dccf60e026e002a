package domain

import "errors"

// Error domain (tanpa dependensi eksternal).
var (
	ErrNotFound            = errors.New("resource tidak ditemukan")
	ErrUserNotFound        = errors.New("user tidak ditemukan")
	ErrEmailAlreadyExists  = errors.New("email sudah terdaftar")
	ErrInvalidInput        = errors.New("input tidak valid")
	ErrInvalidQuantity     = errors.New("qty harus lebih dari nol")
	ErrDuplicate           = errors.New("resource duplikat")
	ErrUnauthorized        = errors.New("tidak terautentikasi")
	ErrForbidden           = errors.New("akses ditolak")
	ErrConcurrencyConflict = errors.New("transaksi gagal karena konflik concurrent, ulangi operasi")
	ErrInsufficientStock   = errors.New("stok tidak mencukupi")
)
