package dao

import "time"

// Kind names one of the independent record lists.
type Kind string

const (
	KindClient   Kind = "client"
	KindOrder    Kind = "order"
	KindFeedback Kind = "feedback"
)

const Source = "whatsapp_bot"

const (
	OrderStatusReceived = "received" // preparing -> ready -> completed пока не реализованы
	FeedbackStatusNew   = "new"
)

const (
	IceLow    = "low"
	IceNormal = "normal"
	IceExtra  = "extra"
	IceNone   = "none"

	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"

	CategoryGeneral = "general"
)

// ReadyAfter is added to the order date to get the estimated ready time.
const ReadyAfter = 15 * time.Minute

type Client struct {
	ClientID         string    `json:"clientId"`
	FullName         string    `json:"fullName"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email"`
	FavoriteDrink    *string   `json:"favoriteDrink"`
	Preferences      []string  `json:"preferences"`
	RegistrationDate time.Time `json:"registrationDate"`
	Source           string    `json:"source"`
}

type Order struct {
	OrderID             string    `json:"orderId"`
	ClientName          string    `json:"clientName"`
	Phone               *string   `json:"phone"`
	TeaType             string    `json:"teaType"`
	SugarPercentage     float64   `json:"sugarPercentage"`
	IceLevel            string    `json:"iceLevel"`
	Size                string    `json:"size"`
	Toppings            []string  `json:"toppings"`
	SpecialInstructions *string   `json:"specialInstructions"`
	OrderDate           time.Time `json:"orderDate"`
	EstimatedReadyTime  time.Time `json:"estimatedReadyTime"`
	Status              string    `json:"status"`
	TotalPrice          float64   `json:"totalPrice"`
	Source              string    `json:"source"`
}

type Feedback struct {
	ID         string    `json:"id"`
	ClientName string    `json:"clientName"`
	Feedback   string    `json:"feedback"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Rating     any       `json:"rating"`
	Category   string    `json:"category"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	Source     string    `json:"source"`
}
