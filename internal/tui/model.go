// Package tui реализует терминальный интерфейс магазина FurniFindr.
// Слой чисто презентационный: каждое нажатие клавиши — вызов операции
// доменной модели и последующая перерисовка, собственной бизнес-логики
// здесь нет.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mmeshcher/furnifindr/internal/catalog"
	"github.com/mmeshcher/furnifindr/internal/checkout"
	"github.com/mmeshcher/furnifindr/internal/model"
	"github.com/mmeshcher/furnifindr/internal/session"
	"github.com/mmeshcher/furnifindr/internal/wishlist"
)

// viewState определяет текущий экран приложения.
type viewState int

const (
	viewCatalog viewState = iota
	viewProduct
	viewCart
	viewWishlist
	viewCheckout
	viewOrders
	viewOrderDetail
	viewProfile
)

// confirmTarget хранит отложенное разрушающее действие до подтверждения.
// Модель корзины и отложенного подтверждений не запрашивает — это забота
// презентационного слоя.
type confirmTarget struct {
	productID string
	view      viewState
}

// Model — корневая модель Bubble Tea приложения.
type Model struct {
	session *session.Session
	logger  *zap.Logger
	styles  Styles

	width  int
	height int
	state  viewState

	productList  list.Model
	searchInput  textinput.Model
	showSearch   bool
	categoryIdx  int
	featuredOnly bool

	selected *model.Product

	cartCursor int
	wishCursor int
	confirm    *confirmTarget

	flow        *checkout.Flow
	couponInput textinput.Model

	ordersCursor int
	orderID      string

	flashErr string
	flashOK  string
}

// NewModel создаёт модель интерфейса поверх покупательской сессии.
func NewModel(s *session.Session, logger *zap.Logger) Model {
	search := textinput.New()
	search.Placeholder = "Search furniture..."
	search.CharLimit = 50
	search.Width = 30

	couponInput := textinput.New()
	couponInput.Placeholder = "Coupon code"
	couponInput.CharLimit = 20
	couponInput.Width = 20

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorHighlight).
		BorderLeftForeground(colorHighlight)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(colorWood).
		BorderLeftForeground(colorHighlight)

	styles := DefaultStyles()

	productList := list.New([]list.Item{}, delegate, 0, 0)
	productList.Title = "FurniFindr"
	productList.Styles.Title = styles.ListTitle
	productList.SetShowHelp(false)
	productList.SetFilteringEnabled(false)

	m := Model{
		session:     s,
		logger:      logger,
		styles:      styles,
		state:       viewCatalog,
		productList: productList,
		searchInput: search,
		couponInput: couponInput,
		categoryIdx: -1,
	}
	m.refreshProducts()
	return m
}

// Init инициализирует модель.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.productList.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Активное подтверждение перехватывает ввод целиком.
	if m.confirm != nil {
		return m.handleConfirmKeys(msg)
	}

	switch m.state {
	case viewCatalog:
		return m.handleCatalogKeys(msg)
	case viewProduct:
		return m.handleProductKeys(msg)
	case viewCart:
		return m.handleCartKeys(msg)
	case viewWishlist:
		return m.handleWishlistKeys(msg)
	case viewCheckout:
		return m.handleCheckoutKeys(msg)
	case viewOrders:
		return m.handleOrdersKeys(msg)
	case viewOrderDetail:
		return m.handleOrderDetailKeys(msg)
	case viewProfile:
		return m.handleProfileKeys(msg)
	}

	return m, nil
}

// switchTab переключает основной экран по цифровым клавишам.
func (m Model) switchTab(key string) (Model, bool) {
	var next viewState
	switch key {
	case "1":
		next = viewCatalog
	case "2":
		next = viewCart
	case "3":
		next = viewWishlist
	case "4":
		next = viewOrders
	case "5":
		next = viewProfile
	default:
		return m, false
	}

	m.state = next
	m.flashErr = ""
	m.flashOK = ""
	m.cartCursor = 0
	m.wishCursor = 0
	m.ordersCursor = 0
	return m, true
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		target := *m.confirm
		m.confirm = nil
		switch target.view {
		case viewCart:
			m.session.Cart().Remove(target.productID)
			m.cartCursor = clamp(m.cartCursor, m.session.Cart().Len())
		case viewWishlist:
			m.session.Wishlist().Remove(target.productID)
			m.wishCursor = clamp(m.wishCursor, m.session.Wishlist().Len())
		}
		return m, nil
	case "n", "esc":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m Model) handleCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showSearch {
		switch key {
		case "enter":
			m.showSearch = false
			m.searchInput.Blur()
			return m, nil
		case "esc":
			m.showSearch = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.refreshProducts()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.refreshProducts()
		return m, cmd
	}

	if next, ok := m.switchTab(key); ok {
		return next, nil
	}

	switch key {
	case "q":
		return m, tea.Quit

	case "/":
		m.showSearch = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "f":
		m.featuredOnly = !m.featuredOnly
		m.refreshProducts()
		return m, nil

	case "c":
		m.categoryIdx++
		if m.categoryIdx >= len(m.session.Catalog().Categories()) {
			m.categoryIdx = -1
		}
		m.refreshProducts()
		return m, nil

	case "a":
		if p, ok := m.selectedCatalogProduct(); ok {
			m.session.AddToCart(p.ID)
			m.flashOK = p.Name + " added to cart"
		}
		return m, nil

	case "w":
		if p, ok := m.selectedCatalogProduct(); ok {
			m.session.SaveToWishlist(p.ID)
			m.flashOK = p.Name + " saved to wishlist"
		}
		return m, nil

	case "enter":
		if p, ok := m.selectedCatalogProduct(); ok {
			m.selected = &p
			m.state = viewProduct
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.productList, cmd = m.productList.Update(msg)
	return m, cmd
}

func (m Model) handleProductKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.state = viewCatalog
		m.selected = nil
		return m, nil

	case "a":
		if m.selected != nil {
			m.session.AddToCart(m.selected.ID)
			m.flashOK = "Added to cart"
		}
		return m, nil

	case "w":
		if m.selected != nil {
			m.session.SaveToWishlist(m.selected.ID)
			m.flashOK = "Saved to wishlist"
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleCartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if next, ok := m.switchTab(key); ok {
		return next, nil
	}

	items := m.session.Cart().Items()

	switch key {
	case "q":
		return m, tea.Quit

	case "down", "j":
		if m.cartCursor < len(items)-1 {
			m.cartCursor++
		}
		return m, nil

	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
		return m, nil

	case "+", "=":
		if m.cartCursor < len(items) {
			m.session.Cart().Increment(items[m.cartCursor].ProductID)
		}
		return m, nil

	case "-":
		if m.cartCursor < len(items) {
			m.session.Cart().Decrement(items[m.cartCursor].ProductID)
		}
		return m, nil

	case "x", "delete":
		if m.cartCursor < len(items) {
			m.confirm = &confirmTarget{productID: items[m.cartCursor].ProductID, view: viewCart}
		}
		return m, nil

	case "enter", "o":
		flow, err := m.session.BeginCheckout()
		if err != nil {
			m.flashErr = "Add some products to your cart before checkout."
			return m, nil
		}
		m.flow = flow
		m.couponInput.SetValue("")
		m.couponInput.Blur()
		m.flashErr = ""
		m.flashOK = ""
		m.state = viewCheckout
		return m, nil
	}
	return m, nil
}

func (m Model) handleWishlistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if next, ok := m.switchTab(key); ok {
		return next, nil
	}

	ids := m.session.Wishlist().Items()

	switch key {
	case "q":
		return m, tea.Quit

	case "down", "j":
		if m.wishCursor < len(ids)-1 {
			m.wishCursor++
		}
		return m, nil

	case "up", "k":
		if m.wishCursor > 0 {
			m.wishCursor--
		}
		return m, nil

	case "m":
		if m.wishCursor < len(ids) {
			if err := m.session.MoveToCart(ids[m.wishCursor]); err != nil {
				if err == wishlist.ErrNotSaved {
					m.flashErr = "Item is no longer in the wishlist"
				}
			} else {
				m.flashOK = "Item added to cart!"
			}
			m.wishCursor = clamp(m.wishCursor, m.session.Wishlist().Len())
		}
		return m, nil

	case "x", "delete":
		if m.wishCursor < len(ids) {
			m.confirm = &confirmTarget{productID: ids[m.wishCursor], view: viewWishlist}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleCheckoutKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.couponInput.Focused() {
		switch key {
		case "enter":
			code := m.couponInput.Value()
			if err := m.flow.ApplyCoupon(code); err != nil {
				m.flashErr = "The coupon code you entered is invalid or expired."
				m.flashOK = ""
			} else {
				m.flashOK = "Coupon applied successfully!"
				m.flashErr = ""
			}
			m.couponInput.Blur()
			return m, nil
		case "esc":
			m.couponInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.couponInput, cmd = m.couponInput.Update(msg)
		return m, cmd
	}

	switch key {
	case "esc":
		m.flow = nil
		m.state = viewCart
		return m, nil

	case "a":
		m.flow.SelectAddress(nextCandidateID(addressIDs(m.flow.Addresses()), m.flow.SelectedAddress()))
		return m, nil

	case "p":
		m.flow.SelectPayment(nextCandidateID(paymentIDs(m.flow.Payments()), m.flow.SelectedPayment()))
		return m, nil

	case "c":
		m.couponInput.Focus()
		return m, textinput.Blink

	case "o", "enter":
		order, err := m.flow.Place()
		if err != nil {
			switch {
			case err == checkout.ErrMissingAddress:
				m.flashErr = "Please select a shipping address"
			case err == checkout.ErrMissingPayment:
				m.flashErr = "Please select a payment method"
			default:
				m.flashErr = err.Error()
			}
			return m, nil
		}
		m.logger.Info("order placed", zap.String("order_id", order.ID))
		m.flow = nil
		m.orderID = order.ID
		m.flashOK = "Your order has been successfully placed!"
		m.flashErr = ""
		m.state = viewOrderDetail
		return m, nil
	}
	return m, nil
}

func (m Model) handleOrdersKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if next, ok := m.switchTab(key); ok {
		return next, nil
	}

	orders := m.session.History().List()

	switch key {
	case "q":
		return m, tea.Quit

	case "down", "j":
		if m.ordersCursor < len(orders)-1 {
			m.ordersCursor++
		}
		return m, nil

	case "up", "k":
		if m.ordersCursor > 0 {
			m.ordersCursor--
		}
		return m, nil

	case "enter":
		if m.ordersCursor < len(orders) {
			m.orderID = orders[m.ordersCursor].ID
			m.state = viewOrderDetail
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleOrderDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "enter":
		m.orderID = ""
		m.flashOK = ""
		m.state = viewOrders
		return m, nil
	}
	return m, nil
}

func (m Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if next, ok := m.switchTab(key); ok {
		return next, nil
	}

	switch key {
	case "q":
		return m, tea.Quit

	case "r":
		// Выход из аккаунта: состояние сессии возвращается к начальному.
		m.session.Reset()
		m.cartCursor = 0
		m.wishCursor = 0
		m.ordersCursor = 0
		m.flashOK = "Session reset"
		return m, nil
	}
	return m, nil
}

func (m *Model) refreshProducts() {
	categoryID := ""
	if m.categoryIdx >= 0 {
		categories := m.session.Catalog().Categories()
		categoryID = categories[m.categoryIdx].ID
	}

	var tags []string
	if m.featuredOnly {
		tags = []string{catalog.TagFeatured}
	}

	products := m.session.Catalog().Filter(m.searchInput.Value(), categoryID, tags)
	items := make([]list.Item, len(products))
	for i, p := range products {
		items[i] = productItem{product: p}
	}
	m.productList.SetItems(items)
}

func (m Model) selectedCatalogProduct() (model.Product, bool) {
	item, ok := m.productList.SelectedItem().(productItem)
	if !ok {
		return model.Product{}, false
	}
	return item.product, true
}

func clamp(cursor, length int) int {
	if cursor >= length {
		cursor = length - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// nextCandidateID возвращает следующий идентификатор по кругу.
// Пустой текущий выбор даёт первого кандидата.
func nextCandidateID(ids []string, current string) string {
	if len(ids) == 0 {
		return current
	}
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

func addressIDs(addresses []model.Address) []string {
	out := make([]string, len(addresses))
	for i, a := range addresses {
		out[i] = a.ID
	}
	return out
}

func paymentIDs(payments []model.PaymentMethod) []string {
	out := make([]string, len(payments))
	for i, p := range payments {
		out[i] = p.ID
	}
	return out
}
