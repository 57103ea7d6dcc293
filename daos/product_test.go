package daos

import (
	"errors"
	"testing"
	"time"

	"ezelectronics/models"
	"ezelectronics/utils"
)

func TestRegisterDuplicateProduct(t *testing.T) {
	db := newTestDB(t)
	dao := NewProductDAO(db)
	seedProduct(t, dao, "X", 5, 100)

	var exists *models.ProductAlreadyExistsError
	err := dao.RegisterProducts("X", models.CategoryLaptop, 1, "", 10, utils.Today())
	if !errors.As(err, &exists) {
		t.Fatalf("expected ProductAlreadyExistsError, got %v", err)
	}
}

func TestSellProduct(t *testing.T) {
	db := newTestDB(t)
	dao := NewProductDAO(db)
	seedProduct(t, dao, "X", 3, 100)

	quantity, err := dao.SellProduct("X", 2, "")
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if quantity != 1 {
		t.Fatalf("expected stock 1, got %d", quantity)
	}

	var low *models.LowProductStockError
	if _, err := dao.SellProduct("X", 2, ""); !errors.As(err, &low) {
		t.Fatalf("expected LowProductStockError, got %v", err)
	}

	if _, err := dao.SellProduct("X", 1, ""); err != nil {
		t.Fatalf("sell last unit: %v", err)
	}
	var empty *models.EmptyProductStockError
	if _, err := dao.SellProduct("X", 1, ""); !errors.As(err, &empty) {
		t.Fatalf("expected EmptyProductStockError, got %v", err)
	}

	var notFound *models.ProductNotFoundError
	if _, err := dao.SellProduct("missing", 1, ""); !errors.As(err, &notFound) {
		t.Fatalf("expected ProductNotFoundError, got %v", err)
	}
}

func TestSellProductDateChecks(t *testing.T) {
	db := newTestDB(t)
	dao := NewProductDAO(db)
	seedProduct(t, dao, "X", 3, 100)

	var dateErr *models.DateError
	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)
	if _, err := dao.SellProduct("X", 1, tomorrow); !errors.As(err, &dateErr) {
		t.Fatalf("expected DateError for future date, got %v", err)
	}
	if _, err := dao.SellProduct("X", 1, "2000-01-01"); !errors.As(err, &dateErr) {
		t.Fatalf("expected DateError before arrival, got %v", err)
	}
	if _, err := dao.SellProduct("X", 1, "not-a-date"); !errors.As(err, &dateErr) {
		t.Fatalf("expected DateError for malformed date, got %v", err)
	}
}

func TestChangeProductQuantity(t *testing.T) {
	db := newTestDB(t)
	dao := NewProductDAO(db)
	seedProduct(t, dao, "X", 3, 100)

	quantity, err := dao.ChangeProductQuantity("X", 2, "")
	if err != nil {
		t.Fatalf("change quantity: %v", err)
	}
	if quantity != 5 {
		t.Fatalf("expected stock 5, got %d", quantity)
	}

	var dateErr *models.DateError
	if _, err := dao.ChangeProductQuantity("X", 1, "2000-01-01"); !errors.As(err, &dateErr) {
		t.Fatalf("expected DateError before arrival, got %v", err)
	}

	var notFound *models.ProductNotFoundError
	if _, err := dao.ChangeProductQuantity("missing", 1, ""); !errors.As(err, &notFound) {
		t.Fatalf("expected ProductNotFoundError, got %v", err)
	}
}

func TestGetProductsFilters(t *testing.T) {
	db := newTestDB(t)
	dao := NewProductDAO(db)
	seedProduct(t, dao, "phone", 5, 100)
	if err := dao.RegisterProducts("laptop", models.CategoryLaptop, 2, "", 900, utils.Today()); err != nil {
		t.Fatalf("register laptop: %v", err)
	}
	if err := dao.RegisterProducts("soldout", models.CategoryLaptop, 1, "", 900, utils.Today()); err != nil {
		t.Fatalf("register soldout: %v", err)
	}
	if _, err := dao.SellProduct("soldout", 1, ""); err != nil {
		t.Fatalf("sell soldout: %v", err)
	}

	all, err := dao.GetProducts(GroupingNone, "", "")
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}

	laptops, err := dao.GetProducts(GroupingCategory, models.CategoryLaptop, "")
	if err != nil {
		t.Fatalf("get laptops: %v", err)
	}
	if len(laptops) != 2 {
		t.Fatalf("expected 2 laptops, got %d", len(laptops))
	}

	var notFound *models.ProductNotFoundError
	if _, err := dao.GetProducts(GroupingModel, "", "missing"); !errors.As(err, &notFound) {
		t.Fatalf("expected ProductNotFoundError, got %v", err)
	}

	available, err := dao.GetAvailableProducts(GroupingCategory, models.CategoryLaptop, "")
	if err != nil {
		t.Fatalf("available laptops: %v", err)
	}
	if len(available) != 1 {
		t.Fatalf("expected 1 available laptop, got %d", len(available))
	}

	// A known model with no stock lists as empty, not as an error.
	byModel, err := dao.GetAvailableProducts(GroupingModel, "", "soldout")
	if err != nil {
		t.Fatalf("available soldout: %v", err)
	}
	if len(byModel) != 0 {
		t.Fatalf("expected no available units, got %d", len(byModel))
	}
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)
	dao := NewProductDAO(db)
	seedProduct(t, dao, "X", 5, 100)

	if err := dao.DeleteProduct("X"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var notFound *models.ProductNotFoundError
	if err := dao.DeleteProduct("X"); !errors.As(err, &notFound) {
		t.Fatalf("expected ProductNotFoundError, got %v", err)
	}

	seedProduct(t, dao, "Y", 1, 10)
	if err := dao.DeleteAllProducts(); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	all, err := dao.GetProducts(GroupingNone, "", "")
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no products, got %d", len(all))
	}
}
