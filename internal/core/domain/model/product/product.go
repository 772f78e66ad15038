package product

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created via NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog item with its unit price.
type Product struct {
	id        kernel.ID
	name      string
	unitPrice kernel.Money

	isConstructed bool
}

// NewProduct validates and creates a product. Name is required.
func NewProduct(id kernel.ID, name string, unitPrice kernel.Money) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}
	p.unitPrice = unitPrice
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.ID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

func (p *Product) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
