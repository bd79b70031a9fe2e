package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultAPIURL is where the storefront API lives unless config or the
// --api flag says otherwise.
const DefaultAPIURL = "http://localhost:8080"

// Client is the typed face of the storefront REST API. Public catalog
// reads go straight to the HTTP client; anything carrying a bearer
// token goes through the Gateway so a 401 tears the session down in
// one place.
type Client struct {
	BaseURL string
	Gateway *Gateway
	Token   string
}

// NewClient builds an API client. Token may be empty for anonymous use.
func NewClient(baseURL string, gw *Gateway, token string) *Client {
	return &Client{BaseURL: baseURL, Gateway: gw, Token: token}
}

// apiMessage is the error envelope the backend uses for failures.
type apiMessage struct {
	Message string `json:"message"`
}

func (c *Client) do(method, path string, authed bool, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request for %s: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	var resp *http.Response
	if authed {
		resp, err = c.Gateway.Do(req)
	} else {
		resp, err = c.Gateway.Client.Do(req)
	}
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && authed {
		// The gateway already cleared the credential.
		return &SessionExpiredError{Endpoint: path}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg apiMessage
		data, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(data, &msg)
		return &APIError{Status: resp.StatusCode, Endpoint: path, Message: msg.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

// --- Authentication ---

// Login exchanges credentials for a session token.
func (c *Client) Login(email, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.do(http.MethodPost, "/login", false, LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new customer account.
func (c *Client) Signup(req SignupRequest) error {
	return c.do(http.MethodPost, "/signup", false, req, nil)
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile() (*Profile, error) {
	var out Profile
	if err := c.do(http.MethodGet, "/profile", true, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces the authenticated user's profile fields.
func (c *Client) UpdateProfile(p Profile) error {
	return c.do(http.MethodPut, "/profile", true, p, nil)
}

// --- Catalog ---

// Products lists the whole catalog.
func (c *Client) Products() ([]Product, error) {
	var out []Product
	if err := c.do(http.MethodGet, "/products", false, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Product fetches a single catalog entry.
func (c *Client) Product(id int) (*Product, error) {
	var out Product
	if err := c.do(http.MethodGet, fmt.Sprintf("/products/%d", id), false, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct adds a catalog entry. Admin only.
func (c *Client) CreateProduct(p Product) error {
	return c.do(http.MethodPost, "/products", true, p, nil)
}

// UpdateProduct replaces a catalog entry. Admin only.
func (c *Client) UpdateProduct(id int, p Product) error {
	return c.do(http.MethodPut, fmt.Sprintf("/products/%d", id), true, p, nil)
}

// DeleteProduct removes a catalog entry. Admin only.
func (c *Client) DeleteProduct(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/products/%d", id), true, nil, nil)
}

// Categories lists the top-level catalog groupings.
func (c *Client) Categories() ([]Category, error) {
	var out []Category
	if err := c.do(http.MethodGet, "/categories", false, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Subcategories lists the subcategories of one category.
func (c *Client) Subcategories(categoryID int) ([]Subcategory, error) {
	var out []Subcategory
	path := fmt.Sprintf("/subcategories?category_id=%d", categoryID)
	if err := c.do(http.MethodGet, path, false, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory adds a category. Admin only.
func (c *Client) CreateCategory(name string) error {
	return c.do(http.MethodPost, "/categories", true, Category{Name: name}, nil)
}

// UpdateCategory renames a category. Admin only.
func (c *Client) UpdateCategory(id int, name string) error {
	return c.do(http.MethodPut, fmt.Sprintf("/categories/update/%d", id), true, Category{Name: name}, nil)
}

// DeleteCategory removes a category. Admin only.
func (c *Client) DeleteCategory(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/categories/delete/%d", id), true, nil, nil)
}

// CreateSubcategory adds a subcategory under a category. Admin only.
func (c *Client) CreateSubcategory(name string, categoryID int) error {
	return c.do(http.MethodPost, "/subcategories", true, Subcategory{Name: name, CategoryID: categoryID}, nil)
}

// --- Orders ---

// CreateOrder submits the checkout payload. Works for guests too; the
// storefront lets anonymous customers order.
func (c *Client) CreateOrder(req OrderRequest) error {
	return c.do(http.MethodPost, "/orders", false, req, nil)
}

// MyOrders lists the authenticated customer's own orders.
func (c *Client) MyOrders() ([]OrderSummary, error) {
	var out []OrderSummary
	if err := c.do(http.MethodGet, "/my-orders", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllOrders lists every order. Admin only.
func (c *Client) AllOrders() ([]OrderSummary, error) {
	var out []OrderSummary
	if err := c.do(http.MethodGet, "/orders", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderDetails fetches one order with its line items. Admin only.
func (c *Client) OrderDetails(id int) (*OrderDetail, error) {
	var out OrderDetail
	if err := c.do(http.MethodGet, fmt.Sprintf("/orders/%d", id), true, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus moves an order to a new status. Admin only.
func (c *Client) UpdateOrderStatus(id int, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	return c.do(http.MethodPost, fmt.Sprintf("/orders/update/%d", id), true, body, nil)
}

// --- Articles ---

// Articles lists the published tips articles.
func (c *Client) Articles() ([]Article, error) {
	var out []Article
	if err := c.do(http.MethodGet, "/articles", false, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateArticle publishes an article. Admin only.
func (c *Client) CreateArticle(a Article) error {
	return c.do(http.MethodPost, "/articles", true, a, nil)
}

// --- Contact ---

// SendContactMessage submits the public contact form.
func (c *Client) SendContactMessage(req ContactRequest) error {
	return c.do(http.MethodPost, "/contact", false, req, nil)
}

// ContactMessages lists the contact inbox. Admin only.
func (c *Client) ContactMessages() ([]ContactMessage, error) {
	var out []ContactMessage
	if err := c.do(http.MethodGet, "/contact", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkMessageRead flags an inbox message as read. Admin only.
func (c *Client) MarkMessageRead(id int) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/contact/%d/read", id), true, nil, nil)
}
