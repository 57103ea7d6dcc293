package models

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleManager, RoleAdmin:
		return true
	}
	return false
}

type Category string

const (
	CategorySmartphone Category = "Smartphone"
	CategoryLaptop     Category = "Laptop"
	CategoryAppliance  Category = "Appliance"
)

func (c Category) Valid() bool {
	switch c {
	case CategorySmartphone, CategoryLaptop, CategoryAppliance:
		return true
	}
	return false
}

type User struct {
	Username  string `json:"username" db:"username"`
	Name      string `json:"name" db:"name"`
	Surname   string `json:"surname" db:"surname"`
	Password  string `json:"-" db:"password"`
	Role      Role   `json:"role" db:"role"`
	Address   string `json:"address,omitempty" db:"address"`
	Birthdate string `json:"birthdate,omitempty" db:"birthdate"`
}

func (u User) IsAdmin() bool    { return u.Role == RoleAdmin }
func (u User) IsManager() bool  { return u.Role == RoleManager }
func (u User) IsCustomer() bool { return u.Role == RoleCustomer }

type Product struct {
	Model        string   `json:"model" db:"model"`
	Category     Category `json:"category" db:"category"`
	SellingPrice float64  `json:"sellingPrice" db:"selling_price"`
	ArrivalDate  string   `json:"arrivalDate" db:"arrival_date"`
	Details      string   `json:"details,omitempty" db:"details"`
	Quantity     int      `json:"quantity" db:"quantity"`
}

// Cart is a user's shopping cart. PaymentDate stays empty until checkout;
// Total is the stored value recomputed from the line items after every
// mutation.
type Cart struct {
	ID          uuid.UUID       `json:"-" db:"id"`
	Customer    string          `json:"customer" db:"customer"`
	Paid        bool            `json:"paid" db:"paid"`
	PaymentDate string          `json:"paymentDate,omitempty" db:"payment_date"`
	Total       float64         `json:"total" db:"total"`
	Products    []ProductInCart `json:"products"`
}

// ProductInCart is a cart line item. Category and Price are snapshots taken
// when the product was added, not live references into the catalog.
type ProductInCart struct {
	CartID   uuid.UUID `json:"-" db:"id_cart"`
	Model    string    `json:"model" db:"model"`
	Quantity int       `json:"quantity" db:"quantity"`
	Category Category  `json:"category" db:"category"`
	Price    float64   `json:"price" db:"price"`
}

type ProductReview struct {
	Model   string `json:"model" db:"model"`
	User    string `json:"user" db:"username"`
	Score   int    `json:"score" db:"score"`
	Date    string `json:"date" db:"date"`
	Comment string `json:"comment" db:"comment"`
}
