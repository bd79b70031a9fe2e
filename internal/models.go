package internal

// Product is a catalog entry as served by GET /products.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryID    int     `json:"category_id"`
	ImageURL      string  `json:"image_url"`
}

// Category is a top-level catalog grouping.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Subcategory belongs to a Category. Fetched lazily per category,
// mirroring the storefront's accordion behavior.
type Subcategory struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID int    `json:"category_id"`
}

// OrderRequest is the checkout payload sent to POST /orders.
type OrderRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	DeliveryMethod  string `json:"delivery_method"`
	ShippingCity    string `json:"shipping_city"`
	ShippingCommune string `json:"shipping_commune"`
	ShippingAddress string `json:"shipping_address"`

	CreateAccount bool   `json:"create_account"`
	Password      string `json:"password"`
	OrderNote     string `json:"order_note"`

	Items []CartLineItem `json:"items"`
	Total float64        `json:"total"`
}

// OrderSummary is one row of an order listing (GET /orders, GET /my-orders).
type OrderSummary struct {
	ID             int     `json:"id"`
	CustomerName   string  `json:"customer_name"`
	Total          float64 `json:"total"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	DeliveryMethod string  `json:"delivery_method"`
}

// OrderDetail is the full order view served by GET /orders/{id}.
type OrderDetail struct {
	ID              int         `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	DeliveryMethod  string      `json:"delivery_method"`
	CreatedAt       string      `json:"created_at"`
	ShippingCity    string      `json:"shipping_city"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []OrderItem `json:"items"`
}

// OrderItem is a single purchased line inside an OrderDetail.
type OrderItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Article is a blog/tips entry from GET /articles.
type Article struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
}

// ContactMessage is an entry in the admin contact inbox.
type ContactMessage struct {
	ID        int    `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// ContactRequest is the payload for POST /contact.
type ContactRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// Profile is the authenticated user's profile.
type Profile struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the credential issued on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

// SignupRequest is the payload for POST /signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}
