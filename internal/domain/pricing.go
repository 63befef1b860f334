package domain

import "github.com/shopspring/decimal"

// CartItem is one snack line in the session cart. UnitPrice is captured
// when the line is first added, so later catalog edits don't reprice an
// open cart.
type CartItem struct {
	SnackID   int
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Cart struct {
	Items []CartItem
}

// SetItem sets the quantity for a snack line, adding the line if absent.
// A quantity of zero or less removes the line instead of keeping it at zero.
func (c *Cart) SetItem(snack Snack, quantity int) {
	for i, item := range c.Items {
		if item.SnackID != snack.ID {
			continue
		}

		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}

		c.Items[i].Quantity = quantity
		return
	}

	if quantity <= 0 {
		return
	}

	c.Items = append(c.Items, CartItem{
		SnackID:   snack.ID,
		Name:      snack.Name,
		Quantity:  quantity,
		UnitPrice: snack.UnitPrice,
	})
}

func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero

	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// OrderTotal prices a full submission: one ticket at the given fare plus
// the snack cart subtotal.
func OrderTotal(basePrice decimal.Decimal, fare Fare, cart *Cart) decimal.Decimal {
	total := TicketPrice(basePrice, fare)

	if cart != nil {
		total = total.Add(cart.Subtotal())
	}

	return total
}
