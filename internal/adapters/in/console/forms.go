package console

import (
	"github.com/go-playground/validator/v10"
)

// Form drafts collect raw operator input before it is turned into commands.
// Validation happens here, at the presentation boundary; the command
// constructors only re-check what the domain itself cares about (ids,
// non-negative prices, positive quantities).
var formValidator = validator.New()

// pizzaForm is the draft for adding a catalog pizza.
type pizzaForm struct {
	Name        string  `validate:"required"`
	Description string  `validate:"-"`
	Price       float64 `validate:"gte=0"`
	Image       string  `validate:"omitempty,url"`
}

// courierForm is the draft for adding a roster courier.
type courierForm struct {
	Name  string `validate:"required"`
	Phone string `validate:"required"`
}

// orderLineForm is the draft for one order position. Pizza refers to the
// 1-based row number in the rendered menu table.
type orderLineForm struct {
	Pizza    int `validate:"gt=0"`
	Quantity int `validate:"gt=0"`
}

// orderForm is the draft for creating a customer order.
type orderForm struct {
	CustomerName    string          `validate:"required"`
	CustomerPhone   string          `validate:"required"`
	CustomerAddress string          `validate:"required"`
	Lines           []orderLineForm `validate:"min=1,dive"`
}

func (f pizzaForm) validate() error {
	return formValidator.Struct(f)
}

func (f courierForm) validate() error {
	return formValidator.Struct(f)
}

func (f orderForm) validate() error {
	return formValidator.Struct(f)
}
