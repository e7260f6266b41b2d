package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
)

// OrdersToExcel writes the admin order listing into an .xlsx workbook
// at path, one row per order.
func OrdersToExcel(orders []model.Order, path string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return errors.Wrap(err, "create sheet")
	}

	headers := []string{
		"OrderID", "OrderedAt", "Customer", "Email",
		"Status", "TotalAmount", "Items", "ShipTo",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()

		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.OrderedAt.Format(time.RFC3339))

		var name, email string
		if o.User != nil {
			name, email = o.User.Name, o.User.Email
		}
		row.AddCell().SetValue(name)
		row.AddCell().SetValue(email)

		row.AddCell().SetValue(o.OrderStatus)
		row.AddCell().SetValue(o.TotalAmount)

		lines := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			lines = append(lines, fmt.Sprintf("%s (%s) x%d", it.Name, it.Weight, it.Quantity))
		}
		row.AddCell().SetValue(strings.Join(lines, "; "))

		var shipTo string
		if o.ShippingAddress != nil {
			a := o.ShippingAddress
			shipTo = fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.Zip)
		}
		row.AddCell().SetValue(shipTo)
	}

	return errors.Wrapf(file.Save(path), "write %s", path)
}
