package memory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
)

type ingredientRepo struct{ s *Store }

func (r *ingredientRepo) Create(ingredient *entity.Ingredient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if ingredient.ID == "" {
		ingredient.ID = uuid.New().String()
	}
	for _, existing := range r.s.ingredients {
		if strings.EqualFold(existing.Name, ingredient.Name) {
			return domain.ErrDuplicate
		}
	}
	now := time.Now()
	ingredient.CreatedAt = now
	ingredient.UpdatedAt = now
	r.s.ingredients[ingredient.ID] = *ingredient
	return nil
}

func (r *ingredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ing, ok := r.s.ingredients[id]
	if !ok {
		return nil, nil
	}
	return &ing, nil
}

func (r *ingredientRepo) GetByName(name string) (*entity.Ingredient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, ing := range r.s.ingredients {
		if strings.EqualFold(ing.Name, name) {
			out := ing
			return &out, nil
		}
	}
	return nil, nil
}

// GetForUpdate di memori sama dengan GetByID; isolasi disediakan oleh TxRunner
// yang menjalankan transaksi satu per satu.
func (r *ingredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	return r.GetByID(id)
}

func (r *ingredientRepo) UpdateStock(id string, stock decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ing, ok := r.s.ingredients[id]
	if !ok {
		return domain.ErrNotFound
	}
	ing.CurrentStock = stock
	ing.UpdatedAt = time.Now()
	r.s.ingredients[id] = ing
	return nil
}

func (r *ingredientRepo) Update(ingredient *entity.Ingredient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.ingredients[ingredient.ID]
	if !ok {
		return domain.ErrNotFound
	}
	current.Name = ingredient.Name
	current.Unit = ingredient.Unit
	current.MinimumStock = ingredient.MinimumStock
	current.UpdatedAt = time.Now()
	r.s.ingredients[ingredient.ID] = current
	return nil
}

func (r *ingredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := make([]*entity.Ingredient, 0, len(r.s.ingredients))
	for _, ing := range r.s.ingredients {
		out := ing
		all = append(all, &out)
	}
	sortByName(all)
	return page(all, limit, offset), nil
}

func (r *ingredientRepo) ListLowStock(limit int) ([]*entity.Ingredient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	low := make([]*entity.Ingredient, 0)
	for _, ing := range r.s.ingredients {
		if ing.IsLowStock() {
			out := ing
			low = append(low, &out)
		}
	}
	sortByStockAsc(low)
	if limit > 0 && len(low) > limit {
		low = low[:limit]
	}
	return low, nil
}

func (r *ingredientRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.ingredients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.ingredients, id)
	return nil
}

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(movement *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now()
	}
	r.s.movements = append(r.s.movements, *movement)
	return nil
}

func (r *movementRepo) GetByID(id string) (*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.movements {
		if m.ID == id {
			out := m
			return &out, nil
		}
	}
	return nil, nil
}

func (r *movementRepo) List(ingredientID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Terbaru dulu: iterasi mundur dari urutan append.
	matched := make([]*entity.StockMovement, 0)
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if ingredientID != "" && m.IngredientID != ingredientID {
			continue
		}
		out := m
		matched = append(matched, &out)
	}
	return page(matched, limit, offset), nil
}

type purchaseRepo struct{ s *Store }

func (r *purchaseRepo) Create(purchase *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	now := time.Now()
	purchase.CreatedAt = now
	purchase.UpdatedAt = now
	for i := range purchase.Items {
		if purchase.Items[i].ID == "" {
			purchase.Items[i].ID = uuid.New().String()
		}
		purchase.Items[i].PurchaseID = purchase.ID
	}
	clone := *purchase
	clone.Items = append([]entity.PurchaseItem(nil), purchase.Items...)
	r.s.purchases[purchase.ID] = clone
	return nil
}

func (r *purchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.purchases[id]
	if !ok {
		return nil, nil
	}
	out := p
	out.Items = append([]entity.PurchaseItem(nil), p.Items...)
	return &out, nil
}

func (r *purchaseRepo) GetForUpdate(id string) (*entity.Purchase, error) {
	return r.GetByID(id)
}

func (r *purchaseRepo) UpdateStatus(id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.purchases[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	r.s.purchases[id] = p
	return nil
}

func (r *purchaseRepo) List(status string, limit, offset int) ([]*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := make([]*entity.Purchase, 0, len(r.s.purchases))
	for _, p := range r.s.purchases {
		if status != "" && p.Status != status {
			continue
		}
		out := p
		out.Items = append([]entity.PurchaseItem(nil), p.Items...)
		all = append(all, &out)
	}
	sortByCreatedDesc(all, func(p *entity.Purchase) time.Time { return p.CreatedAt })
	return page(all, limit, offset), nil
}

type receiptRepo struct{ s *Store }

func (r *receiptRepo) Create(receipt *entity.Receipt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if receipt.ReceivedAt.IsZero() {
		receipt.ReceivedAt = time.Now()
	}
	r.s.receipts[receipt.ID] = *receipt
	return nil
}

func (r *receiptRepo) GetByPurchase(purchaseID string) (*entity.Receipt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rc := range r.s.receipts {
		if rc.PurchaseID == purchaseID {
			out := rc
			return &out, nil
		}
	}
	return nil, nil
}

type productionRepo struct{ s *Store }

func (r *productionRepo) Create(production *entity.Production) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if production.ID == "" {
		production.ID = uuid.New().String()
	}
	if production.CreatedAt.IsZero() {
		production.CreatedAt = time.Now()
	}
	r.s.productions[production.ID] = *production
	return nil
}

func (r *productionRepo) GetByID(id string) (*entity.Production, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.productions[id]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
}

func (r *productionRepo) List(limit, offset int) ([]*entity.Production, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := make([]*entity.Production, 0, len(r.s.productions))
	for _, p := range r.s.productions {
		out := p
		all = append(all, &out)
	}
	sortByCreatedDesc(all, func(p *entity.Production) time.Time { return p.CreatedAt })
	return page(all, limit, offset), nil
}

type recipeRepo struct{ s *Store }

func (r *recipeRepo) Create(recipe *entity.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	for i := range recipe.Items {
		if recipe.Items[i].ID == "" {
			recipe.Items[i].ID = uuid.New().String()
		}
		recipe.Items[i].RecipeID = recipe.ID
	}
	clone := *recipe
	clone.Items = append([]entity.RecipeItem(nil), recipe.Items...)
	r.s.recipes[recipe.ID] = clone
	return nil
}

func (r *recipeRepo) GetByID(id string) (*entity.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.recipes[id]
	if !ok {
		return nil, nil
	}
	out := rec
	out.Items = append([]entity.RecipeItem(nil), rec.Items...)
	return &out, nil
}

func (r *recipeRepo) Update(recipe *entity.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.recipes[recipe.ID]
	if !ok {
		return domain.ErrNotFound
	}
	current.Name = recipe.Name
	current.Description = recipe.Description
	current.Portion = recipe.Portion
	current.Items = append([]entity.RecipeItem(nil), recipe.Items...)
	for i := range current.Items {
		if current.Items[i].ID == "" {
			current.Items[i].ID = uuid.New().String()
		}
		current.Items[i].RecipeID = recipe.ID
	}
	current.UpdatedAt = time.Now()
	r.s.recipes[recipe.ID] = current
	return nil
}

func (r *recipeRepo) List(limit, offset int) ([]*entity.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := make([]*entity.Recipe, 0, len(r.s.recipes))
	for _, rec := range r.s.recipes {
		out := rec
		out.Items = append([]entity.RecipeItem(nil), rec.Items...)
		all = append(all, &out)
	}
	sortRecipesByName(all)
	return page(all, limit, offset), nil
}

func (r *recipeRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.recipes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.recipes, id)
	return nil
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	out := u
	return &out, nil
}

func (r *userRepo) FindByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	current.Name = user.Name
	current.Role = user.Role
	current.Status = user.Status
	current.UpdatedAt = time.Now()
	r.s.users[user.ID] = current
	return nil
}

func (r *userRepo) List(limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out := u
		all = append(all, &out)
	}
	sortUsersByEmail(all)
	return page(all, limit, offset), nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
