package tui

import (
	"fmt"
	"strings"

	"github.com/mmeshcher/furnifindr/internal/pricing"
)

// View отрисовывает текущий экран.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.state {
	case viewCatalog:
		content = m.viewCatalog()
	case viewProduct:
		content = m.viewProduct()
	case viewCart:
		content = m.viewCart()
	case viewWishlist:
		content = m.viewWishlist()
	case viewCheckout:
		content = m.viewCheckout()
	case viewOrders:
		content = m.viewOrders()
	case viewOrderDetail:
		content = m.viewOrderDetail()
	case viewProfile:
		content = m.viewProfile()
	}

	return m.styles.App.Render(content)
}

func (m Model) viewTabs() string {
	tabs := []struct {
		label string
		view  viewState
	}{
		{"1 Shop", viewCatalog},
		{"2 Cart", viewCart},
		{"3 Wishlist", viewWishlist},
		{"4 Orders", viewOrders},
		{"5 Profile", viewProfile},
	}

	var sb strings.Builder
	for _, t := range tabs {
		if t.view == m.state {
			sb.WriteString(m.styles.ActiveTab.Render(t.label))
		} else {
			sb.WriteString(m.styles.Tab.Render(t.label))
		}
	}
	return sb.String()
}

func (m Model) viewFlash() string {
	switch {
	case m.flashErr != "":
		return m.styles.Error.Render(m.flashErr) + "\n"
	case m.flashOK != "":
		return m.styles.Success.Render(m.flashOK) + "\n"
	}
	return ""
}

func (m Model) viewConfirm() string {
	if m.confirm == nil {
		return ""
	}
	target := "your cart"
	if m.confirm.view == viewWishlist {
		target = "your wishlist"
	}
	return m.styles.Confirm.Render(
		fmt.Sprintf("Are you sure you want to remove this item from %s? (y/n)", target),
	) + "\n"
}

func (m Model) viewCatalog() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("FurniFindr — Welcome"))
	sb.WriteString("\n")
	sb.WriteString(m.viewTabs())
	sb.WriteString("\n\n")

	if m.showSearch {
		sb.WriteString("Search: ")
		sb.WriteString(m.searchInput.View())
		sb.WriteString("\n\n")
	}

	var filters []string
	if m.categoryIdx >= 0 {
		filters = append(filters, "category: "+m.session.Catalog().Categories()[m.categoryIdx].Name)
	}
	if m.featuredOnly {
		filters = append(filters, "best selling only")
	}
	if len(filters) > 0 {
		sb.WriteString(m.styles.Subtle.Render("Filters: " + strings.Join(filters, ", ")))
		sb.WriteString("\n")
	}

	sb.WriteString(m.viewFlash())
	sb.WriteString(m.productList.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.HelpBar.Render("/ search • c category • f best selling • a add to cart • w wishlist • enter details • q quit"))

	return sb.String()
}

func (m Model) viewProduct() string {
	if m.selected == nil {
		return "No product selected"
	}
	p := *m.selected

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(p.Name))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Price.Render("$" + pricing.Format(p.Price)))
	sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf("  ★ %s", p.Rating.StringFixed(1))))
	sb.WriteString("\n\n")
	sb.WriteString(p.Description)
	sb.WriteString("\n")

	if len(p.Colors) > 0 {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Subtle.Render("Colors: " + strings.Join(p.Colors, ", ")))
		sb.WriteString("\n")
	}
	if len(p.Gallery) > 0 {
		sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%d photos in gallery", len(p.Gallery)+1)))
		sb.WriteString("\n")
	}

	reviews := m.session.Catalog().ReviewsFor(p.ID)
	if len(reviews) > 0 {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Reviews (%d)", len(reviews))))
		sb.WriteString("\n")
		for _, r := range reviews {
			sb.WriteString(fmt.Sprintf("  %s %s — %s\n", strings.Repeat("★", r.Rating), r.UserName, r.Date))
			sb.WriteString(m.styles.Subtle.Render("  " + r.Text))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.viewFlash())
	sb.WriteString(m.styles.HelpBar.Render("a add to cart • w save to wishlist • esc back"))

	return m.styles.Box.Render(sb.String())
}

func (m Model) viewCart() string {
	var sb strings.Builder

	items := m.session.Cart().Items()

	sb.WriteString(m.styles.Header.Render(fmt.Sprintf("Shopping Cart — %d items", len(items))))
	sb.WriteString("\n")
	sb.WriteString(m.viewTabs())
	sb.WriteString("\n\n")
	sb.WriteString(m.viewConfirm())
	sb.WriteString(m.viewFlash())

	if len(items) == 0 {
		sb.WriteString("Your cart is empty\n")
		sb.WriteString(m.styles.Subtle.Render("Looks like you haven't added anything to your cart yet"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.HelpBar.Render("1 start shopping"))
		return sb.String()
	}

	for i, li := range items {
		line := fmt.Sprintf("%s  $%s × %d = $%s",
			li.Name, pricing.Format(li.UnitPrice), li.Quantity, pricing.Format(li.Total()))
		if i == m.cartCursor {
			sb.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	subtotal := m.session.Cart().Subtotal()
	shipping := m.session.Pricing().ShippingFee()

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Subtotal  $%s\n", pricing.Format(subtotal)))
	sb.WriteString(fmt.Sprintf("Shipping  $%s\n", pricing.Format(shipping)))
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Total     $%s", pricing.Format(subtotal.Add(shipping)))))
	sb.WriteString("\n")
	sb.WriteString(m.styles.HelpBar.Render("j/k move • +/- quantity • x remove • enter checkout"))

	return sb.String()
}

func (m Model) viewWishlist() string {
	var sb strings.Builder

	ids := m.session.Wishlist().Items()

	sb.WriteString(m.styles.Header.Render(fmt.Sprintf("Wishlist — %d items", len(ids))))
	sb.WriteString("\n")
	sb.WriteString(m.viewTabs())
	sb.WriteString("\n\n")
	sb.WriteString(m.viewConfirm())
	sb.WriteString(m.viewFlash())

	if len(ids) == 0 {
		sb.WriteString("Your wishlist is empty\n")
		sb.WriteString(m.styles.HelpBar.Render("1 start shopping"))
		return sb.String()
	}

	for i, id := range ids {
		p, ok := m.session.Catalog().ProductByID(id)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s  $%s", p.Name, pricing.Format(p.Price))
		if i == m.wishCursor {
			sb.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.HelpBar.Render("j/k move • m move to cart • x remove"))

	return sb.String()
}

func (m Model) viewCheckout() string {
	if m.flow == nil {
		return "No checkout in progress"
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Checkout"))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Title.Render("Shipping Address"))
	sb.WriteString("\n")
	for _, a := range m.flow.Addresses() {
		marker := "  "
		if a.ID == m.flow.SelectedAddress() {
			marker = m.styles.Selected.Render("●") + " "
		}
		label := fmt.Sprintf("%s%s — %s, %s, %s %s", marker, a.Name, a.Line1, a.City, a.State, a.Zip)
		if a.IsDefault {
			label += m.styles.Subtle.Render(" [Default]")
		}
		sb.WriteString(label)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Title.Render("Payment Method"))
	sb.WriteString("\n")
	for _, p := range m.flow.Payments() {
		marker := "  "
		if p.ID == m.flow.SelectedPayment() {
			marker = m.styles.Selected.Render("●") + " "
		}
		label := fmt.Sprintf("%s%s ending in %s (exp %s)", marker, p.Type, p.Last4, p.ExpiryDate)
		if p.IsDefault {
			label += m.styles.Subtle.Render(" [Default]")
		}
		sb.WriteString(label)
		sb.WriteString("\n")
	}

	sb.WriteString("\nCoupon: ")
	if m.couponInput.Focused() {
		sb.WriteString(m.couponInput.View())
	} else if code := m.flow.CouponCode(); code != "" {
		sb.WriteString(m.styles.Success.Render(strings.ToUpper(code)))
	} else {
		sb.WriteString(m.styles.Subtle.Render("press c to enter a code"))
	}
	sb.WriteString("\n\n")

	q := m.flow.Quote()
	sb.WriteString(fmt.Sprintf("Subtotal  $%s\n", pricing.Format(q.Subtotal)))
	sb.WriteString(fmt.Sprintf("Shipping  $%s\n", pricing.Format(q.Shipping)))
	sb.WriteString(fmt.Sprintf("Tax       $%s\n", pricing.Format(q.Tax)))
	if !q.Discount.IsZero() {
		sb.WriteString(fmt.Sprintf("Discount -$%s\n", pricing.Format(q.Discount)))
	}
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Total     $%s", pricing.Format(q.Total))))
	sb.WriteString("\n\n")

	sb.WriteString(m.viewFlash())
	sb.WriteString(m.styles.HelpBar.Render("a address • p payment • c coupon • o place order • esc back"))

	return m.styles.Box.Render(sb.String())
}

func (m Model) viewOrders() string {
	var sb strings.Builder

	orders := m.session.History().List()

	sb.WriteString(m.styles.Header.Render("My Orders"))
	sb.WriteString("\n")
	sb.WriteString(m.viewTabs())
	sb.WriteString("\n\n")

	if len(orders) == 0 {
		sb.WriteString("No orders yet\n")
		return sb.String()
	}

	for i, o := range orders {
		line := fmt.Sprintf("Order #%s  %s  %d items  $%s  %s",
			o.Number, o.PlacedAt.Format("Jan 2, 2006"), len(o.Items), pricing.Format(o.Total), o.Status)
		if i == m.ordersCursor {
			sb.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.HelpBar.Render("j/k move • enter details"))

	return sb.String()
}

func (m Model) viewOrderDetail() string {
	order, ok := m.session.History().Get(m.orderID)
	if !ok {
		return "Order not found"
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Order #" + order.Number))
	sb.WriteString("\n")
	sb.WriteString(m.viewFlash())
	sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Placed %s • %s", order.PlacedAt.Format("Jan 2, 2006"), order.Status)))
	sb.WriteString("\n\n")

	for _, li := range order.Items {
		sb.WriteString(fmt.Sprintf("  %s  $%s × %d\n", li.Name, pricing.Format(li.UnitPrice), li.Quantity))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Subtotal  $%s\n", pricing.Format(order.Subtotal)))
	sb.WriteString(fmt.Sprintf("Shipping  $%s\n", pricing.Format(order.Shipping)))
	sb.WriteString(fmt.Sprintf("Tax       $%s\n", pricing.Format(order.Tax)))
	if !order.Discount.IsZero() {
		sb.WriteString(fmt.Sprintf("Discount -$%s\n", pricing.Format(order.Discount)))
	}
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Total     $%s", pricing.Format(order.Total))))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Title.Render("Timeline"))
	sb.WriteString("\n")
	for _, step := range order.Timeline {
		mark := "○"
		if step.Completed {
			mark = m.styles.Success.Render("●")
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", mark, step.Title))
	}

	sb.WriteString(m.styles.HelpBar.Render("esc back to orders"))

	return m.styles.Box.Render(sb.String())
}

func (m Model) viewProfile() string {
	u := m.session.User()

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Profile"))
	sb.WriteString("\n")
	sb.WriteString(m.viewTabs())
	sb.WriteString("\n\n")
	sb.WriteString(m.viewFlash())

	sb.WriteString(m.styles.Title.Render(u.Name))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtle.Render(u.Email + " • " + u.Phone))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Orders: %d • Wishlist: %d • Cart: %d\n\n",
		m.session.History().Len(), m.session.Wishlist().Len(), m.session.Cart().Len()))

	sb.WriteString(m.styles.Title.Render("Addresses"))
	sb.WriteString("\n")
	for _, a := range u.Addresses {
		sb.WriteString(fmt.Sprintf("  %s — %s, %s, %s %s\n", a.Name, a.Line1, a.City, a.State, a.Zip))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Title.Render("Payment Methods"))
	sb.WriteString("\n")
	for _, p := range u.PaymentMethods {
		sb.WriteString(fmt.Sprintf("  %s ending in %s (exp %s)\n", p.Type, p.Last4, p.ExpiryDate))
	}

	sb.WriteString(m.styles.HelpBar.Render("r reset session • q quit"))

	return sb.String()
}
