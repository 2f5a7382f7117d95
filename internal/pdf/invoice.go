package pdf

import (
	"bytes"
	"fmt"

	"storeapi/internal/domain/model"

	"github.com/go-pdf/fpdf"
)

// InvoiceRenderer は請求書をA4のPDFにする
type InvoiceRenderer struct {
	siteName string
}

func NewInvoiceRenderer(siteName string) *InvoiceRenderer {
	if siteName == "" {
		siteName = "Store"
	}
	return &InvoiceRenderer{siteName: siteName}
}

func (r *InvoiceRenderer) Render(inv model.Invoice, o model.Order) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Invoice %s", inv.InvoiceNumber), false)
	doc.AddPage()

	//ヘッダー
	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 12, r.siteName)
	doc.Ln(14)

	doc.SetFont("Helvetica", "B", 13)
	doc.Cell(0, 8, fmt.Sprintf("Invoice %s", inv.InvoiceNumber))
	doc.Ln(8)

	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 6, fmt.Sprintf("Order: %s", o.OrderNumber))
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("Date: %s", inv.CreatedAt.Format("2006-01-02")))
	doc.Ln(10)

	//顧客
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 7, "Bill to")
	doc.Ln(7)
	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 6, inv.CustomerName)
	doc.Ln(6)
	doc.Cell(0, 6, o.CustomerPhone)
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("%s, %s", o.CustomerCity, o.CustomerWilaya))
	doc.Ln(6)
	doc.Cell(0, 6, o.CustomerAddress)
	doc.Ln(12)

	//明細テーブル
	const (
		wItem = 90.0
		wQty  = 20.0
		wUnit = 35.0
		wSum  = 35.0
		rowH  = 8.0
	)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(235, 235, 235)
	doc.CellFormat(wItem, rowH, "Item", "1", 0, "L", true, 0, "")
	doc.CellFormat(wQty, rowH, "Qty", "1", 0, "C", true, 0, "")
	doc.CellFormat(wUnit, rowH, "Unit price", "1", 0, "R", true, 0, "")
	doc.CellFormat(wSum, rowH, "Amount", "1", 1, "R", true, 0, "")

	item := o.ProductName
	if inv.ColorName != "" {
		item = fmt.Sprintf("%s / %s / size %d", o.ProductName, inv.ColorName, inv.Size)
	}

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(wItem, rowH, item, "1", 0, "L", false, 0, "")
	doc.CellFormat(wQty, rowH, fmt.Sprintf("%d", inv.Quantity), "1", 0, "C", false, 0, "")
	doc.CellFormat(wUnit, rowH, formatDZD(o.ProductPrice), "1", 0, "R", false, 0, "")
	doc.CellFormat(wSum, rowH, formatDZD(inv.Subtotal), "1", 1, "R", false, 0, "")

	//合計
	doc.Ln(4)
	doc.CellFormat(wItem+wQty, rowH, "", "", 0, "", false, 0, "")
	doc.CellFormat(wUnit, rowH, "Subtotal", "1", 0, "R", false, 0, "")
	doc.CellFormat(wSum, rowH, formatDZD(inv.Subtotal), "1", 1, "R", false, 0, "")

	doc.CellFormat(wItem+wQty, rowH, "", "", 0, "", false, 0, "")
	doc.CellFormat(wUnit, rowH, fmt.Sprintf("Delivery (%s)", o.DeliveryType), "1", 0, "R", false, 0, "")
	doc.CellFormat(wSum, rowH, formatDZD(inv.DeliveryPrice), "1", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(wItem+wQty, rowH, "", "", 0, "", false, 0, "")
	doc.CellFormat(wUnit, rowH, "Total", "1", 0, "R", false, 0, "")
	doc.CellFormat(wSum, rowH, formatDZD(inv.Total), "1", 1, "R", false, 0, "")

	//フッター
	doc.Ln(10)
	doc.SetFont("Helvetica", "I", 9)
	doc.Cell(0, 6, "Payment: cash on delivery")
	if inv.GeneratedBy != "" {
		doc.Ln(6)
		doc.Cell(0, 6, fmt.Sprintf("Issued by %s", inv.GeneratedBy))
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDZD(amount int64) string {
	return fmt.Sprintf("%d DZD", amount)
}
