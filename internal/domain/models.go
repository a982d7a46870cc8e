package domain

import "time"

// FirstTicketNumber seeds the ticket sequence of a brand-new snapshot.
const FirstTicketNumber = 1001

const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)

// ValidPaymentMethod reports whether method is one of the accepted
// payment method identifiers.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

const (
	EntryOpen  = "open"
	EntrySale  = "sale"
	EntryClose = "close"
)

type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Barcode         string    `json:"barcode"`
	Category        string    `json:"category"`
	SupplierID      string    `json:"supplier_id,omitempty"`
	Quantity        int       `json:"quantity"`
	CostCents       int64     `json:"cost_cents"`
	PriceNetCents   int64     `json:"price_net_cents"`
	PriceGrossCents int64     `json:"price_gross_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type ProductCreateRequest struct {
	Name            string `json:"name"`
	Barcode         string `json:"barcode"`
	Category        string `json:"category"`
	SupplierID      string `json:"supplier_id,omitempty"`
	Quantity        int    `json:"quantity"`
	CostCents       int64  `json:"cost_cents"`
	PriceNetCents   int64  `json:"price_net_cents"`
	PriceGrossCents int64  `json:"price_gross_cents"`
}

type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SupplierCreateRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// SaleItem is a denormalized line: it keeps its own copy of the product
// name, barcode and unit price so the sale stays readable after the
// product is removed from inventory.
type SaleItem struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Barcode        string `json:"barcode"`
	Qty            int    `json:"qty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

type Sale struct {
	ID            string     `json:"id"`
	TicketNumber  int64      `json:"ticket_number"`
	CreatedAt     time.Time  `json:"created_at"`
	Items         []SaleItem `json:"items"`
	TotalCents    int64      `json:"total_cents"`
	PaymentMethod string     `json:"payment_method"`
	Cashier       string     `json:"cashier"`
	PaidCents     int64      `json:"paid_cents"`
	ChangeCents   int64      `json:"change_cents"`
}

type RegisterEntry struct {
	At          time.Time `json:"at"`
	Kind        string    `json:"kind"`
	Detail      string    `json:"detail"`
	AmountCents int64     `json:"amount_cents"`
}

// CashRegister is the per-cashier drawer. ShiftTickets indexes the
// sales recorded during the current shift by ticket number; the global
// sale list on the snapshot is the single source of truth for their
// contents.
type CashRegister struct {
	Cashier      string          `json:"cashier"`
	Open         bool            `json:"open"`
	OpeningCents int64           `json:"opening_cents"`
	BalanceCents int64           `json:"balance_cents"`
	OpenedAt     time.Time       `json:"opened_at,omitzero"`
	History      []RegisterEntry `json:"history"`
	ShiftTickets []int64         `json:"shift_tickets"`
}

// Closure is the reconciliation record written when a register closes.
type Closure struct {
	ID                  string           `json:"id"`
	Cashier             string           `json:"cashier"`
	OpenedAt            time.Time        `json:"opened_at"`
	ClosedAt            time.Time        `json:"closed_at"`
	OpeningCents        int64            `json:"opening_cents"`
	ClosingBalanceCents int64            `json:"closing_balance_cents"`
	SalesCount          int              `json:"sales_count"`
	TotalSalesCents     int64            `json:"total_sales_cents"`
	ByPayment           map[string]int64 `json:"by_payment"`
}

// CartItem snapshots the product fields the till needs; quantities are
// validated against live stock at add, update and settle time.
type CartItem struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Barcode        string `json:"barcode"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Qty            int    `json:"qty"`
}

// Cart is operator-session state. It is never persisted.
type Cart struct {
	Cashier string     `json:"cashier"`
	Items   []CartItem `json:"items"`
}

func (c *Cart) TotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPriceCents * int64(item.Qty)
	}
	return total
}

// Find returns the cart line for productID, or nil.
func (c *Cart) Find(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Remove drops the line for productID if present.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Snapshot is the whole application state. It is serialized as one JSON
// document and rewritten to the snapshot store after every mutation.
type Snapshot struct {
	Inventory     []Product                `json:"inventory"`
	Suppliers     []Supplier               `json:"suppliers"`
	Sales         []Sale                   `json:"sales"`
	Registers     map[string]*CashRegister `json:"registers"`
	Closures      []Closure                `json:"closures"`
	Categories    []string                 `json:"categories"`
	TicketCounter int64                    `json:"ticket_counter"`
}

// NewSnapshot builds the state of a first boot: empty collections, the
// default category set and the ticket sequence at its seed.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Inventory:     []Product{},
		Suppliers:     []Supplier{},
		Sales:         []Sale{},
		Registers:     make(map[string]*CashRegister),
		Closures:      []Closure{},
		Categories:    []string{"General", "Repuestos", "Lubricantes", "Accesorios", "Servicios"},
		TicketCounter: FirstTicketNumber,
	}
}

// NextTicketNumber returns the current ticket number and advances the
// sequence. Callers must hold the engine write lock.
func (s *Snapshot) NextTicketNumber() int64 {
	n := s.TicketCounter
	s.TicketCounter++
	return n
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	ExpiresAt   string `json:"expires_at"`
}

type Actor struct {
	Username string
	Role     string
}

type RegisterOpenRequest struct {
	OpeningCents int64 `json:"opening_cents"`
}

type CartAddRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type CartUpdateRequest struct {
	Delta int `json:"delta"`
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	PaidCents     int64  `json:"paid_cents"`
}

type MarginPreviewRequest struct {
	CostCents       int64 `json:"cost_cents"`
	PriceNetCents   int64 `json:"price_net_cents"`
	PriceGrossCents int64 `json:"price_gross_cents"`
}

type MarginPreview struct {
	ProfitCents    int64   `json:"profit_cents"`
	RentabilityPct float64 `json:"rentability_pct"`
	UtilityPct     float64 `json:"utility_pct"`
}

type DashboardStats struct {
	TotalStockUnits      int   `json:"total_stock_units"`
	InventoryCostCents   int64 `json:"inventory_cost_cents"`
	TodaySalesCents      int64 `json:"today_sales_cents"`
	TodaySalesCount      int   `json:"today_sales_count"`
	CombinedBalanceCents int64 `json:"combined_balance_cents"`
	AverageTicketCents   int64 `json:"average_ticket_cents"`
}

type PaymentTotal struct {
	PaymentMethod string `json:"payment_method"`
	Sales         int    `json:"sales"`
	TotalCents    int64  `json:"total_cents"`
}

type CashierTotal struct {
	Cashier    string `json:"cashier"`
	Sales      int    `json:"sales"`
	TotalCents int64  `json:"total_cents"`
}

type DailyReport struct {
	Date       string         `json:"date"`
	Sales      int            `json:"sales"`
	TotalCents int64          `json:"total_cents"`
	ByPayment  []PaymentTotal `json:"by_payment"`
	ByCashier  []CashierTotal `json:"by_cashier"`
}

type MonthlyTotal struct {
	Month      int   `json:"month"`
	Sales      int   `json:"sales"`
	TotalCents int64 `json:"total_cents"`
}

type MonthlyReport struct {
	Year   int            `json:"year"`
	Months []MonthlyTotal `json:"months"`
}
