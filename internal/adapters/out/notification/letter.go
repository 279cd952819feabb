// Package notification renders acknowledgment letters and delivers them.
package notification

import (
	"bytes"
	"html/template"
	"log/slog"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"

	"github.com/microcosm-cc/bluemonday"
)

var letterTemplate = template.Must(template.New("acknowledgment").Parse(`<html>
<body>
<p>Dear {{.FirstName}} {{.LastName}},</p>
<p>Thank you for order {{.OrderID}}.</p>
<table>
{{- range .Lines}}
<tr><td>{{.Description}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td></tr>
{{- end}}
</table>
<p>Shipping: {{.ShippingMethod}} ({{.ShippingCost}})</p>
<p>Amount to bill: {{.AmountToBill}}</p>
{{- if .From}}
<p>{{.From}}</p>
{{- end}}
</body>
</html>`))

type letterData struct {
	FirstName      string
	LastName       string
	OrderID        string
	Lines          []letterLine
	ShippingMethod string
	ShippingCost   string
	AmountToBill   string
	From           string
}

type letterLine struct {
	Description string
	Quantity    string
	Price       string
}

// LetterRenderer renders the acknowledgment letter of an order as sanitised HTML.
type LetterRenderer struct {
	from   string
	policy *bluemonday.Policy
	logger *slog.Logger
}

var _ ports.AcknowledgmentLetterRenderer = (*LetterRenderer)(nil)

// NewLetterRenderer returns a renderer signing letters with from. A nil logger falls
// back to slog.Default.
func NewLetterRenderer(from string, logger *slog.Logger) *LetterRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("html", "body")
	return &LetterRenderer{
		from:   from,
		policy: policy,
		logger: logger.With("component", "LetterRenderer"),
	}
}

// RenderLetter returns an empty letter if the template fails; the order is never
// held back by its letter.
func (r *LetterRenderer) RenderLetter(o order.PricedOrderWithShippingMethod) order.HTMLString {
	var buf bytes.Buffer
	if err := letterTemplate.Execute(&buf, r.letterData(o)); err != nil {
		r.logger.Error("failed to render acknowledgment letter",
			"orderId", o.PricedOrder().OrderID().String(), "error", err)
		return ""
	}
	return order.HTMLString(r.policy.Sanitize(buf.String()))
}

func (r *LetterRenderer) letterData(o order.PricedOrderWithShippingMethod) letterData {
	priced := o.PricedOrder()
	name := priced.CustomerInfo().Name()
	data := letterData{
		FirstName:      name.FirstName().String(),
		LastName:       name.LastName().String(),
		OrderID:        priced.OrderID().String(),
		ShippingMethod: o.ShippingInfo().Method().String(),
		ShippingCost:   o.ShippingInfo().Cost().String(),
		AmountToBill:   priced.AmountToBill().String(),
		From:           r.from,
	}
	for _, line := range priced.Lines() {
		switch l := line.(type) {
		case order.PricedOrderProductLine:
			data.Lines = append(data.Lines, letterLine{
				Description: l.ProductCode().String(),
				Quantity:    l.Quantity().Value().String(),
				Price:       l.LinePrice().String(),
			})
		case order.CommentLine:
			data.Lines = append(data.Lines, letterLine{Description: l.Text()})
		}
	}
	return data
}
