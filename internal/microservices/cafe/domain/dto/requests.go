package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type RegisterClientRequest struct {
	FullName      string   `json:"fullName" validate:"required"`
	Phone         string   `json:"phone" validate:"required"`
	Email         string   `json:"email"`
	FavoriteDrink string   `json:"favoriteDrink"`
	Preferences   []string `json:"preferences"` // newsletter, promotions, ...
}

type CheckClientRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type FeedbackRequest struct {
	ClientName string `json:"clientName" validate:"required"`
	Feedback   string `json:"feedback" validate:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Rating     any    `json:"rating"`
	Category   string `json:"category"`
}

type PlaceOrderRequest struct {
	ClientName          string      `json:"clientName" validate:"required"`
	Phone               string      `json:"phone"`
	TeaType             string      `json:"teaType" validate:"required"`
	SugarPercentage     *Percentage `json:"sugarPercentage" validate:"required"`
	IceLevel            string      `json:"iceLevel"`
	Size                string      `json:"size"`
	Toppings            []string    `json:"toppings"`
	SpecialInstructions string      `json:"specialInstructions"`
}

// Percentage принимает и число, и числовую строку ("50"), в пределах 0..100.
type Percentage float64

func (p *Percentage) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	var f float64
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
		if err != nil {
			return fmt.Errorf("sugarPercentage must be a number, got %q", s)
		}
		f = v
	} else if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("sugarPercentage must be a number: %w", err)
	}
	// ParseFloat пропускает "NaN" и "Inf"
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > 100 {
		return fmt.Errorf("sugarPercentage must be between 0 and 100, got %v", f)
	}
	*p = Percentage(f)
	return nil
}

// UnmarshalJSON leaves SugarPercentage nil for null or a blank string, so
// Check reports it as missing rather than malformed.
func (r *PlaceOrderRequest) UnmarshalJSON(b []byte) error {
	type plain PlaceOrderRequest
	aux := struct {
		*plain
		SugarPercentage json.RawMessage `json:"sugarPercentage"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	r.SugarPercentage = nil
	if blankJSON(aux.SugarPercentage) {
		return nil
	}
	p := new(Percentage)
	if err := p.UnmarshalJSON(aux.SugarPercentage); err != nil {
		return err
	}
	r.SugarPercentage = p
	return nil
}

func blankJSON(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return true
	}
	var s string
	return raw[0] == '"' && json.Unmarshal(raw, &s) == nil && strings.TrimSpace(s) == ""
}

// Trim normalises free-text fields in place.
func (r *RegisterClientRequest) Trim() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.FavoriteDrink = strings.TrimSpace(r.FavoriteDrink)
	r.Preferences = trimList(r.Preferences)
}

func (r *CheckClientRequest) Trim() {
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *FeedbackRequest) Trim() {
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.Feedback = strings.TrimSpace(r.Feedback)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Category = strings.TrimSpace(r.Category)
	if s, ok := r.Rating.(string); ok {
		r.Rating = strings.TrimSpace(s)
		if r.Rating == "" {
			r.Rating = nil
		}
	}
}

func (r *PlaceOrderRequest) Trim() {
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.TeaType = strings.TrimSpace(r.TeaType)
	r.IceLevel = strings.ToLower(strings.TrimSpace(r.IceLevel))
	r.Size = strings.ToLower(strings.TrimSpace(r.Size))
	r.SpecialInstructions = strings.TrimSpace(r.SpecialInstructions)
	r.Toppings = trimList(r.Toppings)
}

func trimList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
