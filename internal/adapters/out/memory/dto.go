package memory

import (
	"time"

	"pizzacrm/internal/core/domain/model/courier"
	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/core/domain/model/order"
	"pizzacrm/internal/core/domain/model/pizza"

	"github.com/google/uuid"
)

// DTOs are the stored form of each aggregate. They are plain value types so a
// state snapshot can copy them without sharing memory with live aggregates;
// statuses are stored as their string form, mirroring how they would land in
// an external store.

type pizzaDTO struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Image       string
	Available   bool
}

type courierDTO struct {
	ID             uuid.UUID
	Name           string
	Phone          string
	Status         string
	CurrentOrderID *uuid.UUID
}

type orderItemDTO struct {
	PizzaID   uuid.UUID
	PizzaName string
	Quantity  int
	Price     float64
}

type orderDTO struct {
	ID              uuid.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []orderItemDTO
	Total           float64
	Status          string
	CourierID       *uuid.UUID
	CourierName     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func pizzaFromDomain(aggregate *pizza.Pizza) pizzaDTO {
	return pizzaDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Image:       aggregate.Image(),
		Available:   aggregate.Available(),
	}
}

func pizzaToDomain(dto pizzaDTO) (*pizza.Pizza, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return pizza.RestorePizza(id, dto.Name, dto.Description, dto.Price, dto.Image, dto.Available)
}

func courierFromDomain(aggregate *courier.Courier) courierDTO {
	var currentOrderID *uuid.UUID
	if aggregate.CurrentOrderID() != nil {
		raw := aggregate.CurrentOrderID().Bytes()
		currentOrderID = &raw
	}

	return courierDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Phone:          aggregate.Phone(),
		Status:         aggregate.Status().String(),
		CurrentOrderID: currentOrderID,
	}
}

func courierToDomain(dto courierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := courier.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		orderID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &orderID
	}

	return courier.RestoreCourier(id, dto.Name, dto.Phone, status, currentOrderID)
}

func orderFromDomain(aggregate *order.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderItemDTO{
			PizzaID:   item.PizzaID().Bytes(),
			PizzaName: item.PizzaName(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	var courierID *uuid.UUID
	if aggregate.CourierID() != nil {
		raw := aggregate.CourierID().Bytes()
		courierID = &raw
	}

	return orderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerName:    aggregate.CustomerName(),
		CustomerPhone:   aggregate.CustomerPhone(),
		CustomerAddress: aggregate.CustomerAddress(),
		Items:           items,
		Total:           aggregate.Total(),
		Status:          aggregate.Status().String(),
		CourierID:       courierID,
		CourierName:     aggregate.CourierName(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

func orderToDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		pizzaID, itemErr := kernel.UUIDFromBytes(itemDTO.PizzaID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(pizzaID, itemDTO.PizzaName, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress,
		items,
		dto.Total,
		status,
		courierID,
		dto.CourierName,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func (d orderDTO) clone() orderDTO {
	out := d
	out.Items = make([]orderItemDTO, len(d.Items))
	copy(out.Items, d.Items)
	if d.CourierID != nil {
		id := *d.CourierID
		out.CourierID = &id
	}
	return out
}

func (d courierDTO) clone() courierDTO {
	out := d
	if d.CurrentOrderID != nil {
		id := *d.CurrentOrderID
		out.CurrentOrderID = &id
	}
	return out
}
