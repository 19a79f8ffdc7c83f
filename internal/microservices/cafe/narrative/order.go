package narrative

import (
	"fmt"
	"strings"
	"time"

	"cafe-bot/internal/microservices/cafe/domain/dao"
)

type OrderDetails struct {
	ClientName          string    `json:"client_name"`
	TeaType             string    `json:"tea_type"`
	SugarPercentage     float64   `json:"sugar_percentage"`
	IceLevel            string    `json:"ice_level"`
	Size                string    `json:"size"`
	Toppings            []string  `json:"toppings"`
	SpecialInstructions *string   `json:"special_instructions"`
	EstimatedReadyTime  time.Time `json:"estimated_ready_time"`
}

type OrderRaw struct {
	OrderStatus  string        `json:"order_status"`
	OrderID      string        `json:"order_id"`
	TotalPrice   float64       `json:"total_price"`
	OrderDetails *OrderDetails `json:"order_details,omitempty"`
	Error        string        `json:"error,omitempty"`
}

var iceLabels = map[string]string{
	dao.IceLow:    "Poco hielo",
	dao.IceNormal: "Hielo normal",
	dao.IceExtra:  "Hielo extra",
	dao.IceNone:   "Sin hielo",
}

var sizeLabels = map[string]string{
	dao.SizeSmall:  "Pequeño",
	dao.SizeMedium: "Mediano",
	dao.SizeLarge:  "Grande",
}

func label(labels map[string]string, key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}

func price(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func (f *Formatter) OrderSuccess(o dao.Order) Response {
	raw := OrderRaw{
		OrderStatus: o.Status,
		OrderID:     o.OrderID,
		TotalPrice:  o.TotalPrice,
		OrderDetails: &OrderDetails{
			ClientName:          o.ClientName,
			TeaType:             o.TeaType,
			SugarPercentage:     o.SugarPercentage,
			IceLevel:            o.IceLevel,
			Size:                o.Size,
			Toppings:            o.Toppings,
			SpecialInstructions: o.SpecialInstructions,
			EstimatedReadyTime:  o.EstimatedReadyTime,
		},
	}

	var t text
	t.line("🧋 **¡Pedido confirmado en %s!**", f.Brand).blank()
	t.line("¡Gracias, %s! Ya estamos preparando tu bebida.", o.ClientName).blank()
	t.line("📋 **Detalles del pedido:**")
	t.line("• 🔑 Número de Pedido: **%s**", o.OrderID)
	t.line("• 🍵 Té: %s", o.TeaType)
	t.line("• 📏 Tamaño: %s", label(sizeLabels, o.Size))
	t.line("• 🍬 Azúcar: %g%%", o.SugarPercentage)
	t.line("• 🧊 Hielo: %s", label(iceLabels, o.IceLevel))
	if len(o.Toppings) > 0 {
		t.line("• ✨ Toppings: %s", strings.Join(o.Toppings, ", "))
	}
	t.optional("📝 Instrucciones", o.SpecialInstructions)
	t.line("• 💰 Total: **%s**", price(o.TotalPrice)).blank()
	t.line("⏰ Estará listo aproximadamente a las **%s** (%s).", f.clock(o.EstimatedReadyTime), f.date(o.EstimatedReadyTime)).blank()
	return f.wrap(raw, t.last("Muestra tu número de pedido al recogerlo. ¡Que lo disfrutes! 🧋✨"))
}

func (f *Formatter) OrderFailure(o dao.Order) Response {
	raw := OrderRaw{
		OrderStatus: StatusFailed,
		OrderID:     o.OrderID,
		TotalPrice:  o.TotalPrice,
		Error:       "Order could not be placed",
	}

	var t text
	t.line("❌ **Pedido No Procesado**").blank()
	t.line("Lo sentimos, %s. Tuvimos un problema temporal y no pudimos registrar tu pedido.", o.ClientName).blank()
	t.line("🔑 Referencia Temporal: **%s**", o.OrderID).blank()
	t.line("📋 **Lo que pediste:**")
	t.line("• 🍵 Té: %s", o.TeaType)
	t.line("• 📏 Tamaño: %s", label(sizeLabels, o.Size))
	if len(o.Toppings) > 0 {
		t.line("• ✨ Toppings: %s", strings.Join(o.Toppings, ", "))
	}
	t.blank()
	return f.wrap(raw, t.last("No se realizó ningún cargo. Por favor, intenta nuevamente en unos minutos o pide directamente en la tienda."))
}
