package tests

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/revert/pkg/revert"
	"github.com/ib-77/revert/pkg/revert/cell"
	"github.com/ib-77/revert/pkg/revert/stage"
)

// inventory is the business state under protection: order lines keyed by SKU.
type inventory struct {
	stock map[string]int
}

func newInventory() inventory {
	return inventory{stock: map[string]int{
		"chair": 4,
		"lamp":  1,
	}}
}

type reservation struct {
	sku string
	qty int
	err error
}

// reserve takes qty of sku out of stock under a guard whose undo returns the
// quantity only if the reservation actually succeeded.
func reserve(c *cell.Cell[inventory], sku string, qty int) *revert.Guard[reservation] {
	return cell.Apply(c, func(inv *inventory) reservation {
		if inv.stock[sku] < qty {
			return reservation{sku: sku, qty: qty, err: fmt.Errorf("insufficient stock for %s", sku)}
		}
		inv.stock[sku] -= qty
		return reservation{sku: sku, qty: qty}
	}, func(inv *inventory, r reservation) {
		if r.err == nil {
			inv.stock[r.sku] += r.qty
		}
	})
}

// placeOrder reserves stock, then runs payment; any failure before commit
// abandons the reservation.
func placeOrder(c *cell.Cell[inventory], sku string, qty int, pay func() error) error {
	g := reserve(c, sku, qty)
	defer g.Abandon()

	if r := g.Peek(); r.err != nil {
		return r.err
	}
	if err := pay(); err != nil {
		return err
	}

	_, err := g.Commit()
	return err
}

func TestPlaceOrder_PaymentFailureRestoresStock(t *testing.T) {
	c := cell.New(newInventory())

	err := placeOrder(c, "chair", 3, func() error {
		return errors.New("card declined")
	})

	assert.EqualError(t, err, "card declined")
	assert.Equal(t, 4, c.Get().stock["chair"], "abandoned reservation must restore stock")
}

func TestPlaceOrder_SuccessKeepsReservation(t *testing.T) {
	c := cell.New(newInventory())

	err := placeOrder(c, "chair", 3, func() error { return nil })

	assert.NoError(t, err)
	assert.Equal(t, 1, c.Get().stock["chair"])
}

func TestPlaceOrder_InsufficientStockLeavesStateUntouched(t *testing.T) {
	c := cell.New(newInventory())

	err := placeOrder(c, "lamp", 2, func() error {
		t.Fatal("payment must not run when reservation failed")
		return nil
	})

	assert.ErrorContains(t, err, "insufficient stock")
	assert.Equal(t, 1, c.Get().stock["lamp"])
}

func TestPlaceOrder_SequenceMatchesUnguardedRun(t *testing.T) {
	guarded := cell.New(newInventory())
	plain := newInventory()

	orders := []struct {
		sku string
		qty int
	}{
		{"chair", 1},
		{"lamp", 1},
		{"chair", 2},
	}

	for _, o := range orders {
		err := placeOrder(guarded, o.sku, o.qty, func() error { return nil })
		assert.NoError(t, err)
		plain.stock[o.sku] -= o.qty
	}

	assert.Equal(t, plain.stock, guarded.Get().stock,
		"committed guards must be a pass-through over the plain run")
}

func TestStagedProfileRename_AbandonedOnValidationFailure(t *testing.T) {
	type profile struct {
		Name string
	}
	p := profile{Name: "Sarah"}

	rename := func(to string) error {
		g := stage.Cloned(p)
		defer g.Abandon()

		g.Mut().Name = to
		if len(to) == 0 {
			return errors.New("empty name")
		}

		p = g.MustCommit()
		return nil
	}

	assert.Error(t, rename(""))
	assert.Equal(t, "Sarah", p.Name, "failed rename must not touch the field")

	assert.NoError(t, rename("Sasha"))
	assert.Equal(t, "Sasha", p.Name)
}

func TestMixedGuards_DeferredAbandonViaResolver(t *testing.T) {
	c := cell.New(newInventory())

	var open []revert.Resolver
	g1 := reserve(c, "chair", 1)
	open = append(open, g1)
	g1.MustCommit()

	g2 := stage.Value("draft")
	open = append(open, g2)

	for _, r := range open {
		r.Abandon()
	}

	assert.True(t, g1.Resolved())
	assert.True(t, g2.Resolved())
	assert.Equal(t, 3, c.Get().stock["chair"], "committed reservation must survive the sweep")
}
