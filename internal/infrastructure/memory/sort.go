package memory

import (
	"sort"
	"time"

	"github.com/dapurgempita/gempita-api/internal/domain/entity"
)

func sortByName(items []*entity.Ingredient) {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
}

func sortByStockAsc(items []*entity.Ingredient) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CurrentStock.LessThan(items[j].CurrentStock)
	})
}

func sortRecipesByName(items []*entity.Recipe) {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
}

func sortUsersByEmail(items []*entity.User) {
	sort.Slice(items, func(i, j int) bool { return items[i].Email < items[j].Email })
}

func sortByCreatedDesc[T any](items []*T, createdAt func(*T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
