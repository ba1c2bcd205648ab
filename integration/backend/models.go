package backend

// Collection models for the unauthenticated listing endpoints. Fields mirror
// the backend's JSON; only what the listing views render is mapped.

// Product is one catalog entry.
type Product struct {
	ID          uint    `json:"id"`
	ShopID      uint    `json:"shop_id"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Discount    float32 `json:"discount"`
	Taxes       float32 `json:"taxes"`
	Subtotal    float32 `json:"subtotal"`
	Total       float32 `json:"total"`
}

// Shop is one registered shop.
type Shop struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Review is one product or shop review.
type Review struct {
	ID        uint   `json:"id"`
	Stars     uint8  `json:"stars"`
	Comment   string `json:"comment"`
	UserID    uint   `json:"user_id"`
	ProductID uint   `json:"product_id"`
	ShopID    uint   `json:"shop_id"`
}

// User is one public user listing entry.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Order is one order of the authenticated user.
type Order struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
	Total    float32 `json:"total"`
}
