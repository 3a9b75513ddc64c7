package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"pizzacrm/internal/core/application/usecases/queries"
)

// Rendering helpers shape read models into aligned text tables. Rows are
// numbered 1-based; the numbers double as selection handles in the edit and
// delete flows.

func renderMenu(w io.Writer, menu []queries.GetMenuQueryResponse) {
	if len(menu) == 0 {
		fmt.Fprintln(w, "The menu is empty.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPRICE\tAVAILABLE\tDESCRIPTION")
	for i, p := range menu {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%s\n",
			i+1, p.Name, p.Price, yesNo(p.Available), p.Description)
	}
	tw.Flush()
}

func renderCouriers(w io.Writer, couriers []queries.GetAllCouriersQueryResponse) {
	if len(couriers) == 0 {
		fmt.Fprintln(w, "No couriers on the roster.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPHONE\tSTATUS\tCURRENT ORDER")
	for i, c := range couriers {
		currentOrder := "-"
		if c.CurrentOrderID != nil {
			currentOrder = shortID(c.CurrentOrderID.String())
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1, c.Name, c.Phone, c.Status, currentOrder)
	}
	tw.Flush()
}

func renderOrders(w io.Writer, orders []queries.GetAllOrdersQueryResponse) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tCUSTOMER\tITEMS\tTOTAL\tSTATUS\tCOURIER")
	for i, o := range orders {
		courierName := "-"
		if o.CourierID != nil {
			courierName = o.CourierName
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
			i+1, shortID(o.ID.String()), o.CustomerName,
			summarizeItems(o.Items), o.Total, o.Status, courierName)
	}
	tw.Flush()
}

func renderOrderDetails(w io.Writer, o queries.GetAllOrdersQueryResponse) {
	fmt.Fprintf(w, "Order %s\n", o.ID.String())
	fmt.Fprintf(w, "  Customer: %s, %s\n", o.CustomerName, o.CustomerPhone)
	fmt.Fprintf(w, "  Address:  %s\n", o.CustomerAddress)
	fmt.Fprintf(w, "  Status:   %s\n", o.Status)
	if o.CourierID != nil {
		fmt.Fprintf(w, "  Courier:  %s\n", o.CourierName)
	}
	fmt.Fprintf(w, "  Created:  %s\n", o.CreatedAt.Format("2006-01-02 15:04"))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  PIZZA\tQTY\tPRICE\tSUBTOTAL")
	for _, item := range o.Items {
		name := item.PizzaName
		if name == "" {
			name = "(removed from menu)"
		}
		fmt.Fprintf(tw, "  %s\t%d\t%.2f\t%.2f\n",
			name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}
	tw.Flush()
	fmt.Fprintf(w, "  Total: %.2f\n", o.Total)
}

func renderDashboard(w io.Writer, stats queries.GetDashboardQueryResponse) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Orders\t")
	fmt.Fprintf(tw, "  total\t%d\n", stats.TotalOrders)
	fmt.Fprintf(tw, "  pending\t%d\n", stats.PendingOrders)
	fmt.Fprintf(tw, "  active\t%d\n", stats.ActiveOrders)
	fmt.Fprintf(tw, "  completed\t%d\n", stats.CompletedOrders)
	fmt.Fprintf(tw, "  revenue\t%.2f\n", stats.Revenue)
	fmt.Fprintln(tw, "Couriers\t")
	fmt.Fprintf(tw, "  total\t%d\n", stats.TotalCouriers)
	fmt.Fprintf(tw, "  free\t%d\n", stats.FreeCouriers)
	fmt.Fprintf(tw, "  busy\t%d\n", stats.BusyCouriers)
	fmt.Fprintln(tw, "Menu\t")
	fmt.Fprintf(tw, "  pizzas\t%d\n", stats.TotalPizzas)
	fmt.Fprintf(tw, "  available\t%d\n", stats.AvailablePizzas)
	tw.Flush()
}

func summarizeItems(items []queries.GetAllOrdersQueryItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := item.PizzaName
		if name == "" {
			name = "?"
		}
		parts = append(parts, fmt.Sprintf("%s x%d", name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
