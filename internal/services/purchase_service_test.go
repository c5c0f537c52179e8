package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// Мок-репозиторий покупок: ключ — пара (user_id, article_id)
type mockPurchaseRepo struct {
	purchases map[[2]int64]*models.Purchase
	nextID    int64

	// forceConflict имитирует срабатывание уникального ключа БД
	// в обход предварительной проверки Exists.
	forceConflict bool
}

func newMockPurchaseRepo() *mockPurchaseRepo {
	return &mockPurchaseRepo{purchases: make(map[[2]int64]*models.Purchase), nextID: 1}
}

func purchaseKey(userID int, articleID int64) [2]int64 {
	return [2]int64{int64(userID), articleID}
}

func (m *mockPurchaseRepo) Create(_ context.Context, userID int, articleID int64, amount float64) (*models.Purchase, error) {
	key := purchaseKey(userID, articleID)
	if m.forceConflict {
		return nil, repository.ErrDuplicatePurchase
	}
	if _, ok := m.purchases[key]; ok {
		return nil, repository.ErrDuplicatePurchase
	}
	p := &models.Purchase{
		ID:            m.nextID,
		UserID:        userID,
		ArticleID:     articleID,
		PurchaseDate:  time.Now(),
		PaymentMethod: models.PaymentMethodMock,
		Amount:        amount,
		Status:        models.PurchaseCompleted,
	}
	m.nextID++
	m.purchases[key] = p
	return p, nil
}

func (m *mockPurchaseRepo) Exists(_ context.Context, userID int, articleID int64) (bool, error) {
	_, ok := m.purchases[purchaseKey(userID, articleID)]
	return ok, nil
}

func (m *mockPurchaseRepo) GetByUserAndArticle(_ context.Context, userID int, articleID int64) (*models.Purchase, error) {
	p, ok := m.purchases[purchaseKey(userID, articleID)]
	if !ok {
		return nil, repository.ErrNoRows
	}
	return p, nil
}

func (m *mockPurchaseRepo) ListByUser(_ context.Context, userID int) ([]*models.Purchase, error) {
	var out []*models.Purchase
	for _, p := range m.purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPurchaseRepo) StatusForArticles(_ context.Context, userID int, articleIDs []int64) (map[int64]models.PurchaseStatus, error) {
	result := make(map[int64]models.PurchaseStatus)
	for _, id := range articleIDs {
		if p, ok := m.purchases[purchaseKey(userID, id)]; ok {
			date := p.PurchaseDate
			amount := p.Amount
			status := p.Status
			result[id] = models.PurchaseStatus{
				Purchased:    true,
				PurchaseDate: &date,
				Amount:       &amount,
				Status:       &status,
			}
		}
	}
	return result, nil
}

func newTestPurchaseService() (PurchaseService, *mockPurchaseRepo, *mockArticleRepo) {
	purchases := newMockPurchaseRepo()
	articles := newMockArticleRepo()
	return NewPurchaseService(purchases, articles), purchases, articles
}

func seedPremium(articles *mockArticleRepo, price float64) *models.Article {
	a := seedArticle(articles, 1, models.StatusPublished, true)
	a.Price = price
	return a
}

func TestPurchase(t *testing.T) {
	service, _, articles := newTestPurchaseService()
	a := seedPremium(articles, 99.90)
	buyer := &models.User{ID: 5, Role: models.RoleUser}

	p, err := service.Purchase(context.Background(), buyer, a.ID)
	if err != nil {
		t.Fatalf("ошибка покупки: %v", err)
	}
	if p.Status != models.PurchaseCompleted || p.PaymentMethod != models.PaymentMethodMock {
		t.Fatalf("покупка должна завершаться сразу: %+v", p)
	}
	if p.Amount != 99.90 {
		t.Fatalf("сумма должна равняться цене статьи, получено %v", p.Amount)
	}
}

func TestPurchase_Rejections(t *testing.T) {
	service, _, articles := newTestPurchaseService()
	buyer := &models.User{ID: 5, Role: models.RoleUser}

	// Пустой ID.
	var verr *ValidationError
	if _, err := service.Purchase(context.Background(), buyer, 0); !errors.As(err, &verr) {
		t.Fatalf("пустой ID: ожидалась ошибка валидации, получено %v", err)
	}

	// Несуществующая статья.
	if _, err := service.Purchase(context.Background(), buyer, 777); !errors.Is(err, ErrNotFound) {
		t.Fatalf("несуществующая статья: ожидалась ErrNotFound, получено %v", err)
	}

	// Черновик недоступен для покупки, даже премиум.
	draft := seedArticle(articles, 1, models.StatusDraft, true)
	if _, err := service.Purchase(context.Background(), buyer, draft.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("черновик: ожидалась ErrNotFound, получено %v", err)
	}

	// Бесплатная статья.
	free := seedArticle(articles, 1, models.StatusPublished, false)
	if _, err := service.Purchase(context.Background(), buyer, free.ID); !errors.As(err, &verr) {
		t.Fatalf("бесплатная статья: ожидалась ошибка валидации, получено %v", err)
	}
}

func TestPurchase_Duplicate(t *testing.T) {
	service, purchases, articles := newTestPurchaseService()
	a := seedPremium(articles, 10)
	buyer := &models.User{ID: 5, Role: models.RoleUser}

	if _, err := service.Purchase(context.Background(), buyer, a.ID); err != nil {
		t.Fatalf("первая покупка должна пройти: %v", err)
	}
	if _, err := service.Purchase(context.Background(), buyer, a.ID); !errors.Is(err, ErrAlreadyPurchased) {
		t.Fatalf("повтор: ожидалась ErrAlreadyPurchased, получено %v", err)
	}

	// Гонка: предварительная проверка прошла, но вставка упёрлась
	// в уникальный ключ.
	b := seedPremium(articles, 10)
	purchases.forceConflict = true
	if _, err := service.Purchase(context.Background(), buyer, b.ID); !errors.Is(err, ErrAlreadyPurchased) {
		t.Fatalf("конфликт ключа: ожидалась ErrAlreadyPurchased, получено %v", err)
	}
}

func TestPurchaseStatus(t *testing.T) {
	service, _, articles := newTestPurchaseService()
	a := seedPremium(articles, 25)
	buyer := &models.User{ID: 5, Role: models.RoleUser}

	p, err := service.Status(context.Background(), buyer, a.ID)
	if err != nil {
		t.Fatalf("ошибка статуса: %v", err)
	}
	if p != nil {
		t.Fatal("до покупки статус должен быть nil")
	}

	if _, err := service.Purchase(context.Background(), buyer, a.ID); err != nil {
		t.Fatalf("ошибка покупки: %v", err)
	}
	p, err = service.Status(context.Background(), buyer, a.ID)
	if err != nil {
		t.Fatalf("ошибка статуса: %v", err)
	}
	if p == nil || p.ArticleID != a.ID {
		t.Fatalf("после покупки ожидалась запись, получено %+v", p)
	}
}

func TestBatchStatus(t *testing.T) {
	service, _, articles := newTestPurchaseService()
	a := seedPremium(articles, 25)
	b := seedPremium(articles, 50)
	buyer := &models.User{ID: 5, Role: models.RoleUser}

	if _, err := service.Purchase(context.Background(), buyer, a.ID); err != nil {
		t.Fatalf("ошибка покупки: %v", err)
	}

	statuses, err := service.BatchStatus(context.Background(), buyer, []int64{a.ID, b.ID})
	if err != nil {
		t.Fatalf("ошибка пакетного статуса: %v", err)
	}
	if !statuses[a.ID].Purchased {
		t.Fatal("купленная статья должна быть отмечена purchased")
	}
	if statuses[b.ID].Purchased {
		t.Fatal("некупленная статья не должна быть отмечена purchased")
	}

	// Аноним получает purchased:false по каждому запрошенному ID.
	anon, err := service.BatchStatus(context.Background(), nil, []int64{a.ID, b.ID})
	if err != nil {
		t.Fatalf("ошибка анонимного статуса: %v", err)
	}
	if len(anon) != 2 || anon[a.ID].Purchased || anon[b.ID].Purchased {
		t.Fatalf("аноним: ожидались purchased:false по всем ID, получено %+v", anon)
	}
}
