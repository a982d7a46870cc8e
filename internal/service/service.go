package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"servix/backend/internal/domain"
	"servix/backend/internal/pricing"
	"servix/backend/internal/store"
	"servix/backend/internal/xid"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateBarcode    = errors.New("barcode already exists")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrOutOfStock          = errors.New("out of stock")
	ErrStockExceeded       = errors.New("quantity exceeds available stock")
	ErrRegisterClosed      = errors.New("register is closed")
	ErrRegisterAlreadyOpen = errors.New("register already open")
	ErrRegisterNotOpen     = errors.New("register not open")
	ErrInsufficientPayment = errors.New("insufficient payment")
)

type actorContextKey struct{}

func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(domain.Actor)
	return actor, ok
}

// Service is the register engine. It owns the authoritative snapshot
// under a single lock; every mutating method validates first, applies
// its change all-or-nothing, then rewrites the whole snapshot to the
// store.
type Service struct {
	mu    sync.RWMutex
	store store.SnapshotStore
	snap  *domain.Snapshot
}

// New loads the persisted snapshot, bootstrapping a fresh one when the
// slot has never been written.
func New(ctx context.Context, st store.SnapshotStore) (*Service, error) {
	snap, err := st.Load(ctx)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		snap = domain.NewSnapshot()
		if err := st.Save(ctx, snap); err != nil {
			return nil, fmt.Errorf("bootstrap snapshot: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	if snap.Registers == nil {
		snap.Registers = make(map[string]*domain.CashRegister)
	}
	if snap.TicketCounter < domain.FirstTicketNumber {
		snap.TicketCounter = domain.FirstTicketNumber
	}

	return &Service{store: st, snap: snap}, nil
}

// persistLocked rewrites the full snapshot. On failure the in-memory
// state stays authoritative; the next successful Save restores
// durability because every write carries the complete document.
func (s *Service) persistLocked(ctx context.Context) error {
	if err := s.store.Save(ctx, s.snap); err != nil {
		log.Warn().Err(err).Msg("snapshot save failed, in-memory state retained")
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

func (s *Service) AddProduct(ctx context.Context, req domain.ProductCreateRequest) (domain.Product, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Barcode = strings.TrimSpace(req.Barcode)
	req.Category = strings.TrimSpace(req.Category)

	if req.Name == "" {
		return domain.Product{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Quantity < 0 || req.CostCents < 0 || req.PriceNetCents < 0 {
		return domain.Product{}, fmt.Errorf("%w: negative amounts not allowed", ErrValidation)
	}
	if req.PriceGrossCents < 1 {
		return domain.Product{}, fmt.Errorf("%w: gross price is required", ErrValidation)
	}
	if req.Barcode == "" {
		req.Barcode = xid.New("PROD")
	}
	if req.Category == "" {
		req.Category = "General"
	}
	if req.PriceNetCents == 0 {
		req.PriceNetCents = pricing.NetFromGross(req.PriceGrossCents)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.snap.Inventory {
		if p.Barcode == req.Barcode {
			return domain.Product{}, fmt.Errorf("%w: %s", ErrDuplicateBarcode, req.Barcode)
		}
	}

	product := domain.Product{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Barcode:         req.Barcode,
		Category:        req.Category,
		SupplierID:      req.SupplierID,
		Quantity:        req.Quantity,
		CostCents:       req.CostCents,
		PriceNetCents:   req.PriceNetCents,
		PriceGrossCents: req.PriceGrossCents,
		CreatedAt:       time.Now().UTC(),
	}

	s.snap.Inventory = append(s.snap.Inventory, product)
	s.addCategoryLocked(req.Category)

	if err := s.persistLocked(ctx); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// RemoveProduct deletes a product from inventory. A missing ID is an
// error rather than a no-op. Sales keep their denormalized line items,
// so history stays intact.
func (s *Service) RemoveProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.snap.Inventory {
		if p.ID == id {
			s.snap.Inventory = append(s.snap.Inventory[:i], s.snap.Inventory[i+1:]...)
			return s.persistLocked(ctx)
		}
	}
	return fmt.Errorf("%w: product %s", ErrNotFound, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, len(s.snap.Inventory))
	copy(products, s.snap.Inventory)
	return products, nil
}

func (s *Service) FindProductByBarcode(ctx context.Context, barcode string) (domain.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return domain.Product{}, fmt.Errorf("%w: barcode is required", ErrValidation)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.snap.Inventory {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%w: barcode %s", ErrNotFound, barcode)
}

// SearchProducts matches term case-insensitively against product names
// and barcodes. An empty term returns the whole inventory.
func (s *Service) SearchProducts(ctx context.Context, term string) ([]domain.Product, error) {
	term = strings.ToLower(strings.TrimSpace(term))

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]domain.Product, 0, len(s.snap.Inventory))
	for _, p := range s.snap.Inventory {
		if term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Barcode), term) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]string, len(s.snap.Categories))
	copy(categories, s.snap.Categories)
	return categories, nil
}

func (s *Service) addCategoryLocked(category string) {
	for _, c := range s.snap.Categories {
		if strings.EqualFold(c, category) {
			return
		}
	}
	s.snap.Categories = append(s.snap.Categories, category)
}

func (s *Service) CreateSupplier(ctx context.Context, req domain.SupplierCreateRequest) (domain.Supplier, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return domain.Supplier{}, fmt.Errorf("%w: supplier name is required", ErrValidation)
	}

	supplier := domain.Supplier{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Contact:   strings.TrimSpace(req.Contact),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Suppliers = append(s.snap.Suppliers, supplier)
	if err := s.persistLocked(ctx); err != nil {
		return domain.Supplier{}, err
	}
	return supplier, nil
}

func (s *Service) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	suppliers := make([]domain.Supplier, len(s.snap.Suppliers))
	copy(suppliers, s.snap.Suppliers)
	return suppliers, nil
}

func (s *Service) RemoveSupplier(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sup := range s.snap.Suppliers {
		if sup.ID == id {
			s.snap.Suppliers = append(s.snap.Suppliers[:i], s.snap.Suppliers[i+1:]...)
			return s.persistLocked(ctx)
		}
	}
	return fmt.Errorf("%w: supplier %s", ErrNotFound, id)
}

// MarginPreview is pure: it never touches the snapshot.
func (s *Service) MarginPreview(req domain.MarginPreviewRequest) *domain.MarginPreview {
	return pricing.Preview(req.CostCents, req.PriceNetCents, req.PriceGrossCents)
}

func (s *Service) OpenRegister(ctx context.Context, cashier string, openingCents int64) (domain.CashRegister, error) {
	cashier = strings.TrimSpace(cashier)
	if cashier == "" {
		return domain.CashRegister{}, fmt.Errorf("%w: cashier is required", ErrValidation)
	}
	if openingCents < 0 {
		return domain.CashRegister{}, fmt.Errorf("%w: opening amount must not be negative", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reg := s.snap.Registers[cashier]
	if reg == nil {
		reg = &domain.CashRegister{Cashier: cashier}
		s.snap.Registers[cashier] = reg
	}
	if reg.Open {
		return domain.CashRegister{}, fmt.Errorf("%w: %s", ErrRegisterAlreadyOpen, cashier)
	}

	now := time.Now().UTC()
	reg.Open = true
	reg.OpeningCents = openingCents
	reg.BalanceCents = openingCents
	reg.OpenedAt = now
	reg.ShiftTickets = []int64{}
	reg.History = append(reg.History, domain.RegisterEntry{
		At:          now,
		Kind:        domain.EntryOpen,
		Detail:      "register opened",
		AmountCents: openingCents,
	})

	if err := s.persistLocked(ctx); err != nil {
		return domain.CashRegister{}, err
	}
	return cloneRegister(reg), nil
}

// CloseRegister appends the closing entry carrying the running balance
// and writes a Closure summarizing the shift. The balance itself is not
// reset; the next opening amount is whatever the operator declares.
func (s *Service) CloseRegister(ctx context.Context, cashier string) (domain.Closure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg := s.snap.Registers[strings.TrimSpace(cashier)]
	if reg == nil || !reg.Open {
		return domain.Closure{}, fmt.Errorf("%w: %s", ErrRegisterNotOpen, cashier)
	}

	now := time.Now().UTC()
	closure := domain.Closure{
		ID:                  uuid.NewString(),
		Cashier:             reg.Cashier,
		OpenedAt:            reg.OpenedAt,
		ClosedAt:            now,
		OpeningCents:        reg.OpeningCents,
		ClosingBalanceCents: reg.BalanceCents,
		ByPayment:           make(map[string]int64),
	}

	tickets := make(map[int64]bool, len(reg.ShiftTickets))
	for _, t := range reg.ShiftTickets {
		tickets[t] = true
	}
	for _, sale := range s.snap.Sales {
		if !tickets[sale.TicketNumber] {
			continue
		}
		closure.SalesCount++
		closure.TotalSalesCents += sale.TotalCents
		closure.ByPayment[sale.PaymentMethod] += sale.TotalCents
	}

	reg.Open = false
	reg.History = append(reg.History, domain.RegisterEntry{
		At:          now,
		Kind:        domain.EntryClose,
		Detail:      "register closed",
		AmountCents: reg.BalanceCents,
	})
	s.snap.Closures = append(s.snap.Closures, closure)

	if err := s.persistLocked(ctx); err != nil {
		return domain.Closure{}, err
	}
	return closure, nil
}

// RegisterStatus returns the cashier's register, or a zero-value closed
// register for a cashier who has never opened one.
func (s *Service) RegisterStatus(ctx context.Context, cashier string) (domain.CashRegister, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg := s.snap.Registers[strings.TrimSpace(cashier)]
	if reg == nil {
		return domain.CashRegister{
			Cashier:      strings.TrimSpace(cashier),
			History:      []domain.RegisterEntry{},
			ShiftTickets: []int64{},
		}, nil
	}
	return cloneRegister(reg), nil
}

func (s *Service) ListClosures(ctx context.Context) ([]domain.Closure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	closures := make([]domain.Closure, len(s.snap.Closures))
	copy(closures, s.snap.Closures)
	return closures, nil
}

// recordSaleLocked posts a settled sale to the cashier's register. Only
// cash moves the drawer balance; card and transfer sales never do.
func (s *Service) recordSaleLocked(reg *domain.CashRegister, sale domain.Sale) error {
	if !reg.Open {
		return fmt.Errorf("%w: %s", ErrRegisterNotOpen, reg.Cashier)
	}

	reg.ShiftTickets = append(reg.ShiftTickets, sale.TicketNumber)
	reg.History = append(reg.History, domain.RegisterEntry{
		At:          sale.CreatedAt,
		Kind:        domain.EntrySale,
		Detail:      fmt.Sprintf("sale #%d", sale.TicketNumber),
		AmountCents: sale.TotalCents,
	})
	if sale.PaymentMethod == domain.PaymentCash {
		reg.BalanceCents += sale.TotalCents
	}
	return nil
}

// AddToCart appends or merges a line. The cashier's register must be
// open, and the merged quantity must fit in live stock.
func (s *Service) AddToCart(ctx context.Context, cart *domain.Cart, productID string, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	reg := s.snap.Registers[cart.Cashier]
	if reg == nil || !reg.Open {
		return fmt.Errorf("%w: open the register before selling", ErrRegisterClosed)
	}

	product := s.findProductLocked(productID)
	if product == nil {
		return fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}
	if product.Quantity <= 0 {
		return fmt.Errorf("%w: %s", ErrOutOfStock, product.Name)
	}

	if line := cart.Find(productID); line != nil {
		if line.Qty+qty > product.Quantity {
			return fmt.Errorf("%w: %s has %d left", ErrStockExceeded, product.Name, product.Quantity)
		}
		line.Qty += qty
		return nil
	}

	if qty > product.Quantity {
		return fmt.Errorf("%w: %s has %d left", ErrStockExceeded, product.Name, product.Quantity)
	}
	cart.Items = append(cart.Items, domain.CartItem{
		ProductID:      product.ID,
		Name:           product.Name,
		Barcode:        product.Barcode,
		UnitPriceCents: product.PriceGrossCents,
		Qty:            qty,
	})
	return nil
}

// UpdateCartQuantity adjusts a line by delta. A resulting quantity
// below 1 removes the line; increases are re-checked against live
// stock.
func (s *Service) UpdateCartQuantity(ctx context.Context, cart *domain.Cart, productID string, delta int) error {
	line := cart.Find(productID)
	if line == nil {
		return fmt.Errorf("%w: product %s not in cart", ErrNotFound, productID)
	}

	newQty := line.Qty + delta
	if newQty < 1 {
		cart.Remove(productID)
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	product := s.findProductLocked(productID)
	if product == nil {
		return fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}
	if newQty > product.Quantity {
		return fmt.Errorf("%w: %s has %d left", ErrStockExceeded, product.Name, product.Quantity)
	}
	line.Qty = newQty
	return nil
}

// Settle turns the cart into a Sale under one critical section. Every
// line is re-validated against live stock before anything mutates, so a
// failed settle leaves stock, ledger and ticket sequence untouched. The
// cart is cleared only on success.
func (s *Service) Settle(ctx context.Context, cart *domain.Cart, method string, paidCents int64) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg := s.snap.Registers[cart.Cashier]
	if reg == nil || !reg.Open {
		return domain.Sale{}, fmt.Errorf("%w: open the register before selling", ErrRegisterClosed)
	}
	if len(cart.Items) == 0 {
		return domain.Sale{}, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	if !domain.ValidPaymentMethod(method) {
		return domain.Sale{}, fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}

	total := cart.TotalCents()
	if method == domain.PaymentCash && paidCents < total {
		return domain.Sale{}, fmt.Errorf("%w: tendered %d, total %d", ErrInsufficientPayment, paidCents, total)
	}

	// Validate every line before decrementing anything.
	products := make([]*domain.Product, len(cart.Items))
	for i, item := range cart.Items {
		product := s.findProductLocked(item.ProductID)
		if product == nil {
			return domain.Sale{}, fmt.Errorf("%w: product %s", ErrNotFound, item.ProductID)
		}
		if product.Quantity < item.Qty {
			return domain.Sale{}, fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, product.Name, product.Quantity)
		}
		products[i] = product
	}

	for i, item := range cart.Items {
		products[i].Quantity -= item.Qty
	}

	paid := total
	var change int64
	if method == domain.PaymentCash {
		paid = paidCents
		change = paidCents - total
	}

	items := make([]domain.SaleItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = domain.SaleItem{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Barcode:        item.Barcode,
			Qty:            item.Qty,
			UnitPriceCents: item.UnitPriceCents,
			LineTotalCents: item.UnitPriceCents * int64(item.Qty),
		}
	}

	sale := domain.Sale{
		ID:            uuid.NewString(),
		TicketNumber:  s.snap.NextTicketNumber(),
		CreatedAt:     time.Now().UTC(),
		Items:         items,
		TotalCents:    total,
		PaymentMethod: method,
		Cashier:       cart.Cashier,
		PaidCents:     paid,
		ChangeCents:   change,
	}

	s.snap.Sales = append(s.snap.Sales, sale)
	if err := s.recordSaleLocked(reg, sale); err != nil {
		return domain.Sale{}, err
	}

	if err := s.persistLocked(ctx); err != nil {
		return domain.Sale{}, err
	}

	cart.Items = nil
	return sale, nil
}

func (s *Service) ListSales(ctx context.Context) ([]domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]domain.Sale, len(s.snap.Sales))
	copy(sales, s.snap.Sales)
	return sales, nil
}

func (s *Service) FindSaleByTicket(ctx context.Context, ticket int64) (domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sale := range s.snap.Sales {
		if sale.TicketNumber == ticket {
			return sale, nil
		}
	}
	return domain.Sale{}, fmt.Errorf("%w: ticket %d", ErrNotFound, ticket)
}

func (s *Service) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.DashboardStats{}
	for _, p := range s.snap.Inventory {
		stats.TotalStockUnits += p.Quantity
		stats.InventoryCostCents += p.CostCents * int64(p.Quantity)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	var allSalesCents int64
	for _, sale := range s.snap.Sales {
		allSalesCents += sale.TotalCents
		if sale.CreatedAt.Truncate(24 * time.Hour).Equal(today) {
			stats.TodaySalesCents += sale.TotalCents
			stats.TodaySalesCount++
		}
	}
	for _, reg := range s.snap.Registers {
		stats.CombinedBalanceCents += reg.BalanceCents
	}
	if len(s.snap.Sales) > 0 {
		stats.AverageTicketCents = allSalesCents / int64(len(s.snap.Sales))
	}
	return stats, nil
}

func (s *Service) DailyReport(ctx context.Context, date time.Time) (domain.DailyReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day := date.UTC().Truncate(24 * time.Hour)
	report := domain.DailyReport{Date: day.Format("2006-01-02")}

	byPayment := make(map[string]*domain.PaymentTotal)
	byCashier := make(map[string]*domain.CashierTotal)
	for _, sale := range s.snap.Sales {
		if !sale.CreatedAt.Truncate(24 * time.Hour).Equal(day) {
			continue
		}
		report.Sales++
		report.TotalCents += sale.TotalCents

		pt := byPayment[sale.PaymentMethod]
		if pt == nil {
			pt = &domain.PaymentTotal{PaymentMethod: sale.PaymentMethod}
			byPayment[sale.PaymentMethod] = pt
		}
		pt.Sales++
		pt.TotalCents += sale.TotalCents

		ct := byCashier[sale.Cashier]
		if ct == nil {
			ct = &domain.CashierTotal{Cashier: sale.Cashier}
			byCashier[sale.Cashier] = ct
		}
		ct.Sales++
		ct.TotalCents += sale.TotalCents
	}

	report.ByPayment = sortedPaymentTotals(byPayment)
	report.ByCashier = sortedCashierTotals(byCashier)
	return report, nil
}

func (s *Service) MonthlySales(ctx context.Context, year int) (domain.MonthlyReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := domain.MonthlyReport{Year: year, Months: make([]domain.MonthlyTotal, 12)}
	for i := range report.Months {
		report.Months[i].Month = i + 1
	}
	for _, sale := range s.snap.Sales {
		at := sale.CreatedAt.UTC()
		if at.Year() != year {
			continue
		}
		m := &report.Months[int(at.Month())-1]
		m.Sales++
		m.TotalCents += sale.TotalCents
	}
	return report, nil
}

func (s *Service) SalesByCashier(ctx context.Context) ([]domain.CashierTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCashier := make(map[string]*domain.CashierTotal)
	for _, sale := range s.snap.Sales {
		ct := byCashier[sale.Cashier]
		if ct == nil {
			ct = &domain.CashierTotal{Cashier: sale.Cashier}
			byCashier[sale.Cashier] = ct
		}
		ct.Sales++
		ct.TotalCents += sale.TotalCents
	}
	return sortedCashierTotals(byCashier), nil
}

func (s *Service) PaymentBreakdown(ctx context.Context) ([]domain.PaymentTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byPayment := make(map[string]*domain.PaymentTotal)
	for _, sale := range s.snap.Sales {
		pt := byPayment[sale.PaymentMethod]
		if pt == nil {
			pt = &domain.PaymentTotal{PaymentMethod: sale.PaymentMethod}
			byPayment[sale.PaymentMethod] = pt
		}
		pt.Sales++
		pt.TotalCents += sale.TotalCents
	}
	return sortedPaymentTotals(byPayment), nil
}

func (s *Service) findProductLocked(id string) *domain.Product {
	for i := range s.snap.Inventory {
		if s.snap.Inventory[i].ID == id {
			return &s.snap.Inventory[i]
		}
	}
	return nil
}

func cloneRegister(reg *domain.CashRegister) domain.CashRegister {
	clone := *reg
	clone.History = make([]domain.RegisterEntry, len(reg.History))
	copy(clone.History, reg.History)
	clone.ShiftTickets = make([]int64, len(reg.ShiftTickets))
	copy(clone.ShiftTickets, reg.ShiftTickets)
	return clone
}

func sortedPaymentTotals(byPayment map[string]*domain.PaymentTotal) []domain.PaymentTotal {
	totals := make([]domain.PaymentTotal, 0, len(byPayment))
	for _, pt := range byPayment {
		totals = append(totals, *pt)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].PaymentMethod < totals[j].PaymentMethod
	})
	return totals
}

func sortedCashierTotals(byCashier map[string]*domain.CashierTotal) []domain.CashierTotal {
	totals := make([]domain.CashierTotal, 0, len(byCashier))
	for _, ct := range byCashier {
		totals = append(totals, *ct)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Cashier < totals[j].Cashier
	})
	return totals
}
