// Package console implements the interactive admin console.
// It is the inbound adapter: it collects operator input, validates form
// drafts, translates them into commands and queries, and renders the read
// models as text tables.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pizzacrm/internal/core/application/usecases/commands"
	"pizzacrm/internal/core/application/usecases/queries"
	"pizzacrm/internal/core/domain/model/courier"
	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/core/domain/model/order"
)

// Handlers bundles the use case handlers the console drives.
type Handlers struct {
	AddPizza      commands.AddPizzaCommandHandler
	UpdatePizza   commands.UpdatePizzaCommandHandler
	DeletePizza   commands.DeletePizzaCommandHandler
	CreateCourier commands.CreateCourierCommandHandler
	UpdateCourier commands.UpdateCourierCommandHandler
	DeleteCourier commands.DeleteCourierCommandHandler
	CreateOrder   commands.CreateOrderCommandHandler
	UpdateOrder   commands.UpdateOrderCommandHandler
	AssignCourier commands.AssignCourierCommandHandler
	DeleteOrder   commands.DeleteOrderCommandHandler

	GetMenu        queries.GetMenuQueryHandler
	GetAllCouriers queries.GetAllCouriersQueryHandler
	GetAllOrders   queries.GetAllOrdersQueryHandler
	GetDashboard   queries.GetDashboardQueryHandler
}

// Console runs the interactive menu loop over the given reader and writer.
type Console struct {
	handlers Handlers
	in       *bufio.Scanner
	out      io.Writer
}

// NewConsole creates a console bound to the given input and output streams.
func NewConsole(handlers Handlers, in io.Reader, out io.Writer) *Console {
	return &Console{
		handlers: handlers,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run drives the main menu until the operator exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Pizza CRM — admin console")

	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "1) Dashboard")
		fmt.Fprintln(c.out, "2) Menu")
		fmt.Fprintln(c.out, "3) Couriers")
		fmt.Fprintln(c.out, "4) Orders")
		fmt.Fprintln(c.out, "0) Exit")

		choice, ok := c.readLine("> ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.showDashboard(ctx)
		case "2":
			if done := c.menuLoop(ctx); done {
				return nil
			}
		case "3":
			if done := c.courierLoop(ctx); done {
				return nil
			}
		case "4":
			if done := c.orderLoop(ctx); done {
				return nil
			}
		case "0":
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown choice.")
		}
	}
}

func (c *Console) showDashboard(ctx context.Context) {
	stats, err := c.handlers.GetDashboard.Handle(ctx, queries.NewGetDashboardQuery())
	if err != nil {
		c.printError(err)
		return
	}
	renderDashboard(c.out, stats)
}

// menuLoop handles the pizza catalog submenu. Returns true when input ended.
func (c *Console) menuLoop(ctx context.Context) bool {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Menu: 1) list  2) add  3) edit  4) delete  0) back")

		choice, ok := c.readLine("> ")
		if !ok {
			return true
		}

		switch choice {
		case "1":
			c.listMenu(ctx)
		case "2":
			c.addPizza(ctx)
		case "3":
			c.editPizza(ctx)
		case "4":
			c.deletePizza(ctx)
		case "0":
			return false
		default:
			fmt.Fprintln(c.out, "Unknown choice.")
		}
	}
}

func (c *Console) listMenu(ctx context.Context) []queries.GetMenuQueryResponse {
	menu, err := c.handlers.GetMenu.Handle(ctx, queries.NewGetMenuQuery())
	if err != nil {
		c.printError(err)
		return nil
	}
	renderMenu(c.out, menu)
	return menu
}

func (c *Console) addPizza(ctx context.Context) {
	form := pizzaForm{}
	var ok bool
	if form.Name, ok = c.readLine("Name: "); !ok {
		return
	}
	if form.Description, ok = c.readLine("Description: "); !ok {
		return
	}
	if form.Price, ok = c.readFloat("Price: "); !ok {
		return
	}
	if form.Image, ok = c.readLine("Image URL (optional): "); !ok {
		return
	}

	if err := form.validate(); err != nil {
		c.printError(err)
		return
	}

	cmd, err := commands.NewAddPizzaCommand(
		kernel.NewUUID(), form.Name, form.Description, form.Price, form.Image)
	if err != nil {
		c.printError(err)
		return
	}
	if err := c.handlers.AddPizza.Handle(ctx, cmd); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Pizza added.")
}

func (c *Console) editPizza(ctx context.Context) {
	menu := c.listMenu(ctx)
	if len(menu) == 0 {
		return
	}

	idx, ok := c.pickRow("Pizza #: ", len(menu))
	if !ok {
		return
	}
	current := menu[idx]

	name, ok := c.readPatch(fmt.Sprintf("Name [%s]: ", current.Name))
	if !ok {
		return
	}
	description, ok := c.readPatch(fmt.Sprintf("Description [%s]: ", current.Description))
	if !ok {
		return
	}
	price, ok := c.readFloatPatch(fmt.Sprintf("Price [%.2f]: ", current.Price))
	if !ok {
		return
	}
	image, ok := c.readPatch(fmt.Sprintf("Image [%s]: ", current.Image))
	if !ok {
		return
	}
	available, ok := c.readBoolPatch(fmt.Sprintf("Available [%s]: ", yesNo(current.Available)))
	if !ok {
		return
	}

	cmd, err := commands.NewUpdatePizzaCommand(current.ID, name, description, price, image, available)
	if err != nil {
		c.printError(err)
		return
	}
	if err := c.handlers.UpdatePizza.Handle(ctx, cmd); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Pizza updated.")
}

func (c *Console) deletePizza(ctx context.Context) {
	menu := c.listMenu(ctx)
	if len(menu) == 0 {
		return
	}

	idx, ok := c.pickRow("Pizza #: ", len(menu))
	if !ok {
		return
	}

	cmd, err := commands.NewDeletePizzaCommand(menu[idx].ID)
	if err != nil {
		c.printError(err)
		return
	}
	if err := c.handlers.DeletePizza.Handle(ctx, cmd); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Pizza deleted. Existing orders keep their snapshots.")
}

// courierLoop handles the roster submenu. Returns true when input ended.
func (c *Console) courierLoop(ctx context.Context) bool {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Couriers: 1) list  2) add  3) edit  4) delete  0) back")

		choice, ok := c.readLine("> ")
		if !ok {
			return true
		}

		switch choice {
		case "1":
			c.listCouriers(ctx)
		case "2":
			c.addCourier(ctx)
		case "3":
			c.editCourier(ctx)
		case "4":
			c.deleteCourier(ctx)
		case "0":
			return false
		default:
			fmt.Fprintln(c.out, "Unknown choice.")
		}
	}
}

func (c *Console) listCouriers(ctx context.Context) []queries.GetAllCouriersQueryResponse {
	couriers, err := c.handlers.GetAllCouriers.Handle(ctx, queries.NewGetAllCouriersQuery())
	if err != nil {
		c.printError(err)
		return nil
	}
	renderCouriers(c.out, couriers)
	return couriers
}

func (c *Console) addCourier(ctx context.Context) {
	form := courierForm{}
	var ok bool
	if form.Name, ok = c.readLine("Name: "); !ok {
		return
	}
	if form.Phone, ok = c.readLine("Phone: "); !ok {
		return
	}

	if err := form.validate(); err != nil {
		c.printError(err)
		return
	}

	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), form.Name, form.Phone)
	if err != nil {
		c.printError(err)
		return
	}
	if err := c.handlers.CreateCourier.Handle(ctx, cmd); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Courier added.")
}

func (c *Console) editCourier(ctx context.Context) {
	couriers := c.listCouriers(ctx)
	if len(couriers) == 0 {
		return
	}

	idx, ok := c.pickRow("Courier #: ", len(couriers))
	if !ok {
		return
	}
	current := couriers[idx]

	name, ok := c.readPatch(fmt.Sprintf("Name [%s]: ", current.Name))
	if !ok {
		return
	}
	phone, ok := c.readPatch(fmt.Sprintf("Phone [%s]: ", current.Phone))
	if !ok {
		return
	}

	cmd, err := commands.NewUpdateCourierCommand(current.ID, name, phone)
	if err != nil {
		c.printError(err)
		return
	}
	if err := c.handlers.UpdateCourier.Handle(ctx, cmd); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Courier updated.")
}

func (c *Console) deleteCourier(ctx context.Context) {
	couriers := c.listCouriers(ctx)
	if len(couriers) == 0 {
		return
	}

	idx, ok := c.pickRow("Courier #: ", len(couriers))
	if !ok {
		return
	}

	cmd, err := commands.NewDeleteCourierCommand(couriers[idx].ID)
	if err != nil {
		c.printError(err)
		return
	}
	if err := c.handlers.DeleteCourier.Handle(ctx, cmd); err != nil {
		if errors.Is(err, commands.ErrCourierHasActiveOrder) {
			fmt.Fprintln(c.out, "Cannot delete: the courier is delivering an order. Complete or cancel it first.")
			return
		}
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Courier deleted.")
}

// orderLoop handles the order submenu. Returns true when input ended.
func (c *Console) orderLoop(ctx context.Context) bool {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Orders: 1) list  2) details  3) create  4) edit  5) assign courier  6) delete  0) back")

		choice, ok := c.readLine("> ")
		if !ok {
			return true
		}

		switch choice {
		case "1":
			c.listOrders(ctx)
		case "2":
			c.showOrder(ctx)
		case "3":
			c.createOrder(ctx)
		case "4":
			c.editOrder(ctx)
		case "5":
			c.assignCourier(ctx)
		case "6":
			c.deleteOrder(ctx)
		case "0":
			return false
		default:
			fmt.Fprintln(c.out, "Unknown choice.")
		}
	}
}

func (c *Console) listOrders(ctx context.Context) []queries.GetAllOrdersQueryResponse {
	orders, err := c.handlers.GetAllOrders.Handle(ctx, queries.NewGetAllOrdersQuery())
	if err != nil {
		c.printError(err)
		return nil
	}
	renderOrders(c.out, orders)
	return orders
}

func (c *Console) showOrder(ctx context.Context) {
	orders := c.listOrders(ctx)
	if len(orders) == 0 {
		return
	}

	idx, ok := c.pickRow("Order #: ", len(orders))
	if !ok {
		return
	}
	renderOrderDetails(c.out, orders[idx])
}

func (c *Console) createOrder(ctx context.Context) {
	menu := c.listMenu(ctx)
	if len(menu) == 0 {
		fmt.Fprintln(c.out, "Add pizzas to the menu first.")
		return
	}

	form := orderForm{}
	var ok bool
	if form.CustomerName, ok = c.readLine("Customer name: "); !ok {
		return
	}
	if form.CustomerPhone, ok = c.readLine("Customer phone: "); !ok {
		return
	}
	if form.CustomerAddress, ok = c.readLine("Delivery address: "); !ok {
		return
	}

	fmt.Fprintln(c.out, "Add lines; empty pizza number finishes the order.")
	for {
		raw, ok := c.readLine("Pizza #: ")
		if !ok {
			return
		}
		if raw == "" {
			break
		}
		pizzaNumber, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(c.out, "Enter a row number from the menu table.")
			continue
		}
		quantity, ok := c.readInt("Quantity: ")
		if !ok {
			return
		}
		form.Lines = append(form.Lines, orderLineForm{Pizza: pizzaNumber, Quantity: quantity})
	}

	if err := form.validate(); err != nil {
		c.printError(err)
		return
	}

	lines := make([]commands.OrderLine, 0, len(form.Lines))
	for _, lf := range form.Lines {
		if lf.Pizza > len(menu) {
			fmt.Fprintf(c.out, "No menu row %d.\n", lf.Pizza)
			return
		}
		line, err := commands.NewOrderLine(menu[lf.Pizza-1].ID, lf.Quantity)
		if err != nil {
			c.printError(err)
			return
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), form.CustomerName, form.CustomerPhone, form.CustomerAddress, lines)
	if err != nil {
		c.printError(err)
		return
	}
	if err := c.handlers.CreateOrder.Handle(ctx, cmd); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Order created.")
}

func (c *Console) editOrder(ctx context.Context) {
	orders := c.listOrders(ctx)
	if len(orders) == 0 {
		return
	}

	idx, ok := c.pickRow("Order #: ", len(orders))
	if !ok {
		return
	}
	current := orders[idx]

	name, ok := c.readPatch(fmt.Sprintf("Customer name [%s]: ", current.CustomerName))
	if !ok {
		return
	}
	phone, ok := c.readPatch(fmt.Sprintf("Customer phone [%s]: ", current.CustomerPhone))
	if !ok {
		return
	}
	address, ok := c.readPatch(fmt.Sprintf("Address [%s]: ", current.CustomerAddress))
	if !ok {
		return
	}

	var status *order.Status
	raw, ok := c.readLine(fmt.Sprintf(
		"Status [%s] (pending/preparing/ready/delivering/completed/cancelled): ", current.Status))
	if !ok {
		return
	}
	if raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			c.printError(err)
			return
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(current.ID, name, phone, address, status)
	if err != nil {
		c.printError(err)
		return
	}
	if err := c.handlers.UpdateOrder.Handle(ctx, cmd); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Order updated.")
}

func (c *Console) assignCourier(ctx context.Context) {
	orders := c.listOrders(ctx)
	if len(orders) == 0 {
		return
	}

	orderIdx, ok := c.pickRow("Order #: ", len(orders))
	if !ok {
		return
	}

	couriers := c.listCouriers(ctx)
	if len(couriers) == 0 {
		return
	}
	freeCount := 0
	for _, cr := range couriers {
		if cr.Status == courier.StatusFree.String() {
			freeCount++
		}
	}
	if freeCount == 0 {
		fmt.Fprintln(c.out, "Note: no free couriers; assigning a busy one rebinds them.")
	}

	courierIdx, ok := c.pickRow("Courier #: ", len(couriers))
	if !ok {
		return
	}

	cmd, err := commands.NewAssignCourierCommand(orders[orderIdx].ID, couriers[courierIdx].ID)
	if err != nil {
		c.printError(err)
		return
	}
	if err := c.handlers.AssignCourier.Handle(ctx, cmd); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Courier assigned; the order is now delivering.")
}

func (c *Console) deleteOrder(ctx context.Context) {
	orders := c.listOrders(ctx)
	if len(orders) == 0 {
		return
	}

	idx, ok := c.pickRow("Order #: ", len(orders))
	if !ok {
		return
	}

	cmd, err := commands.NewDeleteOrderCommand(orders[idx].ID)
	if err != nil {
		c.printError(err)
		return
	}
	if err := c.handlers.DeleteOrder.Handle(ctx, cmd); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Order deleted.")
}

func (c *Console) printError(err error) {
	fmt.Fprintf(c.out, "Error: %v\n", err)
}

// readLine prompts and returns the trimmed next line. The second result is
// false when input ended.
func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readPatch returns nil for a blank line, meaning keep the stored value.
func (c *Console) readPatch(prompt string) (*string, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return nil, false
	}
	if line == "" {
		return nil, true
	}
	return &line, true
}

func (c *Console) readInt(prompt string) (int, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Enter a whole number.")
			continue
		}
		return v, true
	}
}

func (c *Console) readFloat(prompt string) (float64, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(c.out, "Enter a number.")
			continue
		}
		return v, true
	}
}

func (c *Console) readFloatPatch(prompt string) (*float64, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return nil, false
	}
	if line == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Fprintln(c.out, "Enter a number; keeping the stored value.")
		return nil, true
	}
	return &v, true
}

func (c *Console) readBoolPatch(prompt string) (*bool, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return nil, false
	}
	switch strings.ToLower(line) {
	case "":
		return nil, true
	case "y", "yes", "true":
		v := true
		return &v, true
	case "n", "no", "false":
		v := false
		return &v, true
	default:
		fmt.Fprintln(c.out, "Answer yes or no; keeping the stored value.")
		return nil, true
	}
}

// pickRow prompts for a 1-based row number and returns the 0-based index.
func (c *Console) pickRow(prompt string, count int) (int, bool) {
	for {
		n, ok := c.readInt(prompt)
		if !ok {
			return 0, false
		}
		if n < 1 || n > count {
			fmt.Fprintf(c.out, "Pick a row between 1 and %d.\n", count)
			continue
		}
		return n - 1, true
	}
}
