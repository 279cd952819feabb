package notification_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"ordertaking/internal/adapters/out/notification"
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func str(raw string) kernel.String50 {
	return must(kernel.NewString50(raw, "text"))
}

func pricedOrder(firstName string) order.PricedOrderWithShippingMethod {
	name := must(kernel.NewPersonalName(str(firstName), str("Einstein")))
	email := must(kernel.NewEmailAddress("albert@example.com", "emailAddress"))
	customer := must(kernel.NewCustomerInfo(name, email, kernel.VipStatusNormal))
	address := must(kernel.NewAddress(
		str("1 Main St"),
		kernel.AddressLines{},
		str("Springfield"),
		must(kernel.NewZipCode("12345", "zipCode")),
		must(kernel.NewUsStateCode("NY", "state")),
		str("US"),
	))

	code := must(kernel.NewProductCode("W1234", "productCode"))
	quantity := must(kernel.NewOrderQuantity(code, decimal.NewFromInt(2), "orderQuantity"))
	line := must(order.NewValidatedOrderLine(must(kernel.NewOrderLineID("1", "orderLineId")), code, quantity))
	validated := must(order.NewValidatedOrder(
		must(kernel.NewOrderID("42", "orderId")),
		customer,
		address,
		address,
		[]order.ValidatedOrderLine{line},
		order.Standard{},
	))
	priced := must(order.NewPricedOrder(
		validated,
		[]order.PricedOrderLine{
			order.NewPricedOrderProductLine(line, kernel.MustNewPrice(decimal.NewFromInt(20))),
			order.NewCommentLine("Applied promotion HALF"),
		},
		must(kernel.NewBillingAmount(decimal.NewFromInt(20), "amountToBill")),
	))
	info := order.NewShippingInfo(order.Fedex24, kernel.MustNewPrice(decimal.NewFromInt(10)))
	return order.NewPricedOrderWithShippingMethod(info, priced)
}

func TestLetterRenderer_RenderLetter(t *testing.T) {
	renderer := notification.NewLetterRenderer("orders@widgets.example", nil)

	t.Run("contains_order_details", func(t *testing.T) {
		letter := string(renderer.RenderLetter(pricedOrder("Albert")))

		assert.Contains(t, letter, "Dear Albert Einstein")
		assert.Contains(t, letter, "order 42")
		assert.Contains(t, letter, "W1234")
		assert.Contains(t, letter, "Applied promotion HALF")
		assert.Contains(t, letter, "Shipping: fedex24 (10)")
		assert.Contains(t, letter, "Amount to bill: 20")
		assert.Contains(t, letter, "orders@widgets.example")
	})

	t.Run("customer_markup_is_not_executable", func(t *testing.T) {
		letter := string(renderer.RenderLetter(pricedOrder("<script>alert(1)</script>")))

		assert.NotContains(t, letter, "<script>")
	})
}

func logger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func acknowledgement() order.OrderAcknowledgement {
	return order.OrderAcknowledgement{
		EmailAddress: must(kernel.NewEmailAddress("albert@example.com", "emailAddress")),
		Letter:       "<p>Thanks</p>",
	}
}

func TestLoggingSender_SendAcknowledgment(t *testing.T) {
	t.Run("enabled_sender_logs_message", func(t *testing.T) {
		var buf bytes.Buffer
		sender := notification.NewLoggingSender(true, "orders@widgets.example", logger(&buf))

		result := sender.SendAcknowledgment(context.Background(), acknowledgement())

		require.Equal(t, order.Sent, result)
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "acknowledgment sent", entry["msg"])
		assert.Equal(t, "albert@example.com", entry["to"])
		assert.Equal(t, "LoggingSender", entry["component"])
		assert.NotEmpty(t, entry["messageId"])
	})

	t.Run("disabled_sender_does_not_send", func(t *testing.T) {
		var buf bytes.Buffer
		sender := notification.NewLoggingSender(false, "", logger(&buf))

		result := sender.SendAcknowledgment(context.Background(), acknowledgement())

		assert.Equal(t, order.NotSent, result)
		assert.NotContains(t, buf.String(), "acknowledgment sent")
	})

	t.Run("canceled_context_does_not_send", func(t *testing.T) {
		sender := notification.NewLoggingSender(true, "", logger(&bytes.Buffer{}))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Equal(t, order.NotSent, sender.SendAcknowledgment(ctx, acknowledgement()))
	})
}
