package entity

import "time"

// Production catatan produksi dapur: satu resep dimasak sejumlah porsi.
// Konsumsi bahannya tercatat sebagai movement OUT dengan referensi ke baris ini.
type Production struct {
	ID        string
	RecipeID  string
	Portions  int
	Note      string
	CreatedBy string
	CreatedAt time.Time
}
