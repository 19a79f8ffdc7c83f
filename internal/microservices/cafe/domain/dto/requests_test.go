package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentageAcceptsNumberAndString(t *testing.T) {
	for body, want := range map[string]float64{
		`{"sugarPercentage":50}`:    50,
		`{"sugarPercentage":"75"}`:  75,
		`{"sugarPercentage":"25%"}`: 25,
		`{"sugarPercentage":0}`:     0,
	} {
		var req PlaceOrderRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		require.NotNil(t, req.SugarPercentage, body)
		assert.Equal(t, want, float64(*req.SugarPercentage), body)
	}

	var req PlaceOrderRequest
	assert.Error(t, json.Unmarshal([]byte(`{"sugarPercentage":"lots"}`), &req))
}

func TestPercentageRejectsNonFiniteAndOutOfRange(t *testing.T) {
	for _, body := range []string{
		`{"sugarPercentage":"NaN"}`,
		`{"sugarPercentage":"Inf"}`,
		`{"sugarPercentage":"-Infinity"}`,
		`{"sugarPercentage":101}`,
		`{"sugarPercentage":"-5"}`,
	} {
		var req PlaceOrderRequest
		err := json.Unmarshal([]byte(body), &req)
		assert.ErrorContains(t, err, "between 0 and 100", body)
	}

	var req PlaceOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"sugarPercentage":"100%"}`), &req))
	assert.Equal(t, Percentage(100), *req.SugarPercentage)
}

func TestBlankSugarIsMissingNotMalformed(t *testing.T) {
	for _, body := range []string{
		`{"clientName":"Ana","teaType":"Jasmine","sugarPercentage":""}`,
		`{"clientName":"Ana","teaType":"Jasmine","sugarPercentage":"   "}`,
		`{"clientName":"Ana","teaType":"Jasmine","sugarPercentage":null}`,
		`{"clientName":"Ana","teaType":"Jasmine"}`,
	} {
		var req PlaceOrderRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		assert.Nil(t, req.SugarPercentage, body)
		assert.Equal(t, "Ana", req.ClientName, body)

		req.Trim()
		var ve *ValidationError
		require.ErrorAs(t, Check(req, MsgOrderMissing, DetailsOrderMissing), &ve, body)
		assert.Equal(t, []string{"sugarPercentage"}, ve.Fields, body)
	}
}

func TestCheckReportsMissingFieldsByJSONName(t *testing.T) {
	req := RegisterClientRequest{FullName: "  ", Phone: ""}
	req.Trim()

	err := Check(req, MsgRegisterMissing, DetailsRegisterMissing)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, MsgRegisterMissing, ve.Message)
	assert.Equal(t, DetailsRegisterMissing, ve.Details)
	assert.ElementsMatch(t, []string{"fullName", "phone"}, ve.Fields)
}

func TestCheckAcceptsZeroSugar(t *testing.T) {
	zero := Percentage(0)
	req := PlaceOrderRequest{ClientName: "Ana", TeaType: "Jasmine", SugarPercentage: &zero}
	assert.NoError(t, Check(req, MsgOrderMissing, DetailsOrderMissing))

	req.SugarPercentage = nil
	err := Check(req, MsgOrderMissing, DetailsOrderMissing)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"sugarPercentage"}, ve.Fields)
}

func TestTrimDropsEmptyListEntries(t *testing.T) {
	req := PlaceOrderRequest{Toppings: []string{" boba ", "", "  ", "jelly"}, Size: " LARGE ", IceLevel: " Extra"}
	req.Trim()
	assert.Equal(t, []string{"boba", "jelly"}, req.Toppings)
	assert.Equal(t, "large", req.Size)
	assert.Equal(t, "extra", req.IceLevel)

	fb := FeedbackRequest{Rating: "  "}
	fb.Trim()
	assert.Nil(t, fb.Rating)
}
