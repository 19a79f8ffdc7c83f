package service

import (
	"math"
	"time"

	"cafe-bot/internal/common/idgen"
	"cafe-bot/internal/microservices/cafe/domain/dao"
	"cafe-bot/internal/microservices/cafe/domain/dto"
)

// IDSource issues record identifiers for a prefix.
type IDSource interface {
	Next(prefix string) string
}

// Assembler turns a decoded request into a domain record: trim, check the
// required fields, apply defaults, stamp id and time.
type Assembler struct {
	IDs          IDSource
	Now          func() time.Time
	ClientPrefix string
}

const toppingPrice = 0.75

var basePrices = map[string]float64{
	dao.SizeSmall:  4.50,
	dao.SizeMedium: 5.50,
	dao.SizeLarge:  6.50,
}

// BasePrice of a drink; anything unknown costs as much as a medium.
func BasePrice(size string) float64 {
	if p, ok := basePrices[size]; ok {
		return p
	}
	return basePrices[dao.SizeMedium]
}

// TotalPrice is rounded to cents.
func TotalPrice(size string, toppings int) float64 {
	total := BasePrice(size) + toppingPrice*float64(toppings)
	return math.Round(total*100) / 100
}

func (a *Assembler) stamp() time.Time {
	return a.Now().UTC().Truncate(time.Millisecond)
}

func (a *Assembler) Client(req dto.RegisterClientRequest) (dao.Client, error) {
	req.Trim()
	if err := dto.Check(req, dto.MsgRegisterMissing, dto.DetailsRegisterMissing); err != nil {
		return dao.Client{}, err
	}
	prefix := a.ClientPrefix
	if prefix == "" {
		prefix = idgen.PrefixCafe
	}
	return dao.Client{
		ClientID:         a.IDs.Next(prefix),
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            optional(req.Email),
		FavoriteDrink:    optional(req.FavoriteDrink),
		Preferences:      req.Preferences,
		RegistrationDate: a.stamp(),
		Source:           dao.Source,
	}, nil
}

func (a *Assembler) Order(req dto.PlaceOrderRequest) (dao.Order, error) {
	req.Trim()
	if err := dto.Check(req, dto.MsgOrderMissing, dto.DetailsOrderMissing); err != nil {
		return dao.Order{}, err
	}
	size := normaliseSize(req.Size)
	now := a.stamp()
	return dao.Order{
		OrderID:             a.IDs.Next(idgen.PrefixOrder),
		ClientName:          req.ClientName,
		Phone:               optional(req.Phone),
		TeaType:             req.TeaType,
		SugarPercentage:     float64(*req.SugarPercentage),
		IceLevel:            normaliseIce(req.IceLevel),
		Size:                size,
		Toppings:            req.Toppings,
		SpecialInstructions: optional(req.SpecialInstructions),
		OrderDate:           now,
		EstimatedReadyTime:  now.Add(dao.ReadyAfter),
		Status:              dao.OrderStatusReceived,
		TotalPrice:          TotalPrice(size, len(req.Toppings)),
		Source:              dao.Source,
	}, nil
}

func (a *Assembler) Feedback(req dto.FeedbackRequest) (dao.Feedback, error) {
	req.Trim()
	if err := dto.Check(req, dto.MsgFeedbackMissing, dto.DetailsFeedbackMissing); err != nil {
		return dao.Feedback{}, err
	}
	category := req.Category
	if category == "" {
		category = dao.CategoryGeneral
	}
	return dao.Feedback{
		ID:         a.IDs.Next(idgen.PrefixFeedback),
		ClientName: req.ClientName,
		Feedback:   req.Feedback,
		Email:      optional(req.Email),
		Phone:      optional(req.Phone),
		Rating:     req.Rating,
		Category:   category,
		Date:       a.stamp(),
		Status:     dao.FeedbackStatusNew,
		Source:     dao.Source,
	}, nil
}

func normaliseIce(v string) string {
	switch v {
	case dao.IceLow, dao.IceNormal, dao.IceExtra, dao.IceNone:
		return v
	default:
		return dao.IceNormal
	}
}

func normaliseSize(v string) string {
	if _, ok := basePrices[v]; ok {
		return v
	}
	return dao.SizeMedium
}

// optional maps "" to nil so the field serialises as null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
