package narrative

import (
	"fmt"
	"time"

	"cafe-bot/internal/microservices/cafe/domain/dao"
)

type FeedbackData struct {
	ClientName string    `json:"client_name"`
	Category   string    `json:"category"`
	Rating     any       `json:"rating"`
	Date       time.Time `json:"date"`
}

type FeedbackRaw struct {
	FeedbackStatus string        `json:"feedback_status"`
	FeedbackID     string        `json:"feedback_id"`
	FeedbackData   *FeedbackData `json:"feedback_data,omitempty"`
	Error          string        `json:"error,omitempty"`
}

func (f *Formatter) FeedbackSuccess(fb dao.Feedback) Response {
	raw := FeedbackRaw{
		FeedbackStatus: StatusSuccess,
		FeedbackID:     fb.ID,
		FeedbackData: &FeedbackData{
			ClientName: fb.ClientName,
			Category:   fb.Category,
			Rating:     fb.Rating,
			Date:       fb.Date,
		},
	}

	var t text
	t.line("🙏 **Gracias por tus comentarios, %s**", fb.ClientName).blank()
	t.line("Sentimos mucho que tu experiencia en %s no haya sido la esperada.", f.Brand).blank()
	t.line("📋 **Resumen:**")
	t.line("• 🔑 Referencia: **%s**", fb.ID)
	t.line("• 🗂️ Categoría: %s", fb.Category)
	if fb.Rating != nil {
		t.line("• ⭐ Calificación: %v", fb.Rating)
	}
	t.line("• 💬 Comentario: %s", fb.Feedback)
	t.line("• 📅 Fecha: %s", f.date(fb.Date)).blank()
	if fb.Email != nil || fb.Phone != nil {
		t.line("📞 Nuestro equipo se pondrá en contacto contigo %s.", contactVia(fb)).blank()
	}
	return f.wrap(raw, t.last("Tu opinión nos ayuda a mejorar. ¡Esperamos verte pronto de nuevo! ☕"))
}

func (f *Formatter) FeedbackFailure(fb dao.Feedback) Response {
	raw := FeedbackRaw{
		FeedbackStatus: StatusFailed,
		FeedbackID:     fb.ID,
		Error:          "Feedback could not be saved",
	}

	var t text
	t.line("❌ **No pudimos guardar tus comentarios**").blank()
	t.line("Lo sentimos, %s. Ocurrió un problema temporal.", fb.ClientName).blank()
	t.line("🔑 Referencia Temporal: **%s**", fb.ID).blank()
	return f.wrap(raw, t.last("Por favor, intenta nuevamente en unos minutos o habla con nuestro personal en la tienda. ¡Tu opinión es importante para nosotros!"))
}

func contactVia(fb dao.Feedback) string {
	switch {
	case fb.Email != nil && fb.Phone != nil:
		return fmt.Sprintf("al %s o en %s", *fb.Phone, *fb.Email)
	case fb.Phone != nil:
		return "al " + *fb.Phone
	default:
		return "en " + deref(fb.Email)
	}
}

// SystemError is the narrative sent when the request blew up internally.
func SystemError() string {
	return "⚠️ **Error del Sistema**\n\nOcurrió un error inesperado al procesar tu solicitud.\n\nPor favor, intenta nuevamente en unos minutos. Si el problema continúa, habla con nuestro personal en la tienda."
}
