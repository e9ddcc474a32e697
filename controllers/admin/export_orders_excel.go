package adminController

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/pizzahub/pizzahub-api/store"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(orders *store.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := orders.All()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "UserID", "Items", "Address", "PaymentMethod",
			"Subtotal", "DeliveryFee", "Tax", "Total", "Status", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range all {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)

			var names []string
			for _, item := range o.Items {
				names = append(names, item.Name)
			}
			row.AddCell().SetValue(strings.Join(names, ", "))

			row.AddCell().SetValue(o.Address)
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetFloatWithFormat(o.Subtotal, "0.00")
			row.AddCell().SetFloatWithFormat(o.DeliveryFee, "0.00")
			row.AddCell().SetFloatWithFormat(o.Tax, "0.00")
			row.AddCell().SetFloatWithFormat(o.Total, "0.00")
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
