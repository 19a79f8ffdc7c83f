package narrative

import (
	"time"

	"cafe-bot/internal/microservices/cafe/domain/dao"
)

type ClientData struct {
	FullName         string    `json:"full_name"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email"`
	FavoriteDrink    *string   `json:"favorite_drink"`
	RegistrationDate time.Time `json:"registration_date"`
}

type RegistrationRaw struct {
	RegistrationStatus string      `json:"registration_status"`
	ClientID           string      `json:"client_id"`
	ClientData         *ClientData `json:"client_data,omitempty"`
	Error              string      `json:"error,omitempty"`
}

func (f *Formatter) RegisterSuccess(c dao.Client) Response {
	raw := RegistrationRaw{
		RegistrationStatus: StatusSuccess,
		ClientID:           c.ClientID,
		ClientData: &ClientData{
			FullName:         c.FullName,
			Phone:            c.Phone,
			Email:            c.Email,
			FavoriteDrink:    c.FavoriteDrink,
			RegistrationDate: c.RegistrationDate,
		},
	}

	var t text
	t.line("☕ **¡Bienvenido a %s!**", f.Brand).blank()
	t.line("🎉 ¡Ya estás oficialmente registrado, %s!", c.FullName).blank()
	t.line("📋 **Detalles de tu registro:**")
	t.line("• 🔑 ID de Cliente: **%s**", c.ClientID)
	t.line("• 👤 Nombre: %s", c.FullName)
	t.line("• 📞 Teléfono: %s", c.Phone)
	t.optional("📧 Email", c.Email)
	t.optional("🥤 Bebida Favorita", c.FavoriteDrink)
	t.line("• 📅 Fecha de Registro: %s", f.date(c.RegistrationDate)).blank()
	t.line("💫 **¿Qué sigue?**")
	t.line("• Muestra este mensaje para un 10%% de descuento en tu primera visita")
	t.line("• Acumularás puntos con cada compra")
	t.line("• Recibirás ofertas exclusivas para miembros")
	t.blank()
	return f.wrap(raw, t.last("¡Estamos emocionados de tenerte! ¡Te esperamos pronto! ☕✨"))
}

func (f *Formatter) RegisterFailure(c dao.Client) Response {
	raw := RegistrationRaw{
		RegistrationStatus: StatusFailed,
		ClientID:           c.ClientID,
		Error:              "Database registration failed",
	}

	var t text
	t.line("❌ **Registro Incompleto**").blank()
	t.line("Encontramos un problema temporal y no pudimos completar tu registro.").blank()
	t.line("🔑 Referencia Temporal: **%s**", c.ClientID).blank()
	t.line("📋 **Detalles que recibimos:**")
	t.line("• 👤 Nombre: %s", c.FullName)
	t.line("• 📞 Teléfono: %s", c.Phone)
	t.optional("📧 Email", c.Email)
	t.optional("🥤 Bebida Favorita", c.FavoriteDrink)
	t.blank()
	return f.wrap(raw, t.last("Por favor, intenta nuevamente en unos minutos o habla con nuestro personal en la tienda. ¡Disculpa las molestias!"))
}

const (
	CheckRegistered    = "registered"
	CheckNotRegistered = "not_registered"
)

// CheckResponse is the flat reply of /check-client.
type CheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Phone   string `json:"phone"`
	Desc    string `json:"desc"`
}

func (f *Formatter) CheckClient(phone string, registered bool) CheckResponse {
	if registered {
		return CheckResponse{
			Status:  CheckRegistered,
			Message: "Client is already registered",
			Phone:   phone,
			Desc:    "✅ **¡Ya eres parte de " + f.Brand + "!**\n\nEncontramos tu registro con el teléfono " + phone + ". ¡Puedes hacer tu pedido cuando quieras! ☕",
		}
	}
	return CheckResponse{
		Status:  CheckNotRegistered,
		Message: "Client not found - please register",
		Phone:   phone,
		Desc:    "🔍 **Aún no estás registrado**\n\nNo encontramos ningún cliente con el teléfono " + phone + ".\n\n📝 Regístrate para obtener un 10% de descuento en tu primera visita.",
	}
}
