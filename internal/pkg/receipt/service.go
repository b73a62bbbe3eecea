// internal/pkg/receipt/service.go
package receipt

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/order"
)

// Service renders order receipts to PDF for local saving/printing
type Service struct {
	config *config.Config
}

// NewService creates a new receipt service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GeneratePDF renders a PDF receipt for a confirmed order
func (s *Service) GeneratePDF(receipt *order.Receipt) (*bytes.Buffer, error) {
	data := receiptData{
		StoreName:   s.config.App.Name,
		GeneratedAt: time.Now().Format("January 2, 2006"),
		Receipt:     receipt,
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	// Set PDF options
	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	// Add page from HTML content
	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from the receipt template
func (s *Service) generateHTML(data receiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// receiptData is the data passed to the receipt template
type receiptData struct {
	StoreName   string
	GeneratedAt string
	Receipt     *order.Receipt
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.Receipt.OrderNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .receipt-title {
            font-size: 28px;
            font-weight: bold;
            color: #2563eb;
            margin-bottom: 10px;
        }
        .order-details {
            margin-bottom: 30px;
        }
        .order-details td {
            padding: 5px 0;
            vertical-align: top;
        }
        .order-details .label {
            font-weight: bold;
            width: 150px;
        }
        .section-title {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #374151;
        }
        .shipping-info {
            margin-bottom: 30px;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .items-table .qty-col,
        .items-table .total-col {
            text-align: right;
            width: 80px;
        }
        .totals {
            float: right;
            width: 300px;
        }
        .totals table {
            width: 100%;
            border-collapse: collapse;
        }
        .totals td {
            padding: 6px 8px;
        }
        .totals .grand-total {
            font-weight: bold;
            font-size: 18px;
            border-top: 2px solid #333;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="receipt-title">{{.StoreName}}</div>
        <div>Order Receipt - generated {{.GeneratedAt}}</div>
    </div>

    <div class="order-details">
        <table>
            <tr><td class="label">Order Number:</td><td>{{.Receipt.OrderNumber}}</td></tr>
            <tr><td class="label">Status:</td><td>{{.Receipt.Status}}</td></tr>
            {{if .Receipt.CreatedAt}}<tr><td class="label">Placed:</td><td>{{.Receipt.CreatedAt}}</td></tr>{{end}}
        </table>
    </div>

    <div class="shipping-info">
        <div class="section-title">Ship To</div>
        <div>{{.Receipt.ShippingAddress.Street}}</div>
        <div>{{.Receipt.ShippingAddress.City}}, {{.Receipt.ShippingAddress.State}}</div>
        <div>{{.Receipt.ShippingAddress.ZipCode}}, {{.Receipt.ShippingAddress.Country}}</div>
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Item</th>
                <th class="qty-col">Qty</th>
                <th class="total-col">Subtotal</th>
            </tr>
        </thead>
        <tbody>
            {{range .Receipt.Items}}
            <tr>
                <td>{{.ProductName}}</td>
                <td class="qty-col">{{.Quantity}}</td>
                <td class="total-col">&#8369;{{printf "%.2f" .Subtotal}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr><td>Subtotal</td><td>&#8369;{{printf "%.2f" .Receipt.Subtotal}}</td></tr>
            <tr><td>Shipping</td><td>&#8369;{{printf "%.2f" .Receipt.ShippingCost}}</td></tr>
            <tr class="grand-total"><td>Total</td><td>&#8369;{{printf "%.2f" .Receipt.Total}}</td></tr>
        </table>
    </div>
</body>
</html>
`
