package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/common/middleware"
	"cafe-bot/internal/microservices/cafe/domain/dto"
	"cafe-bot/internal/microservices/cafe/narrative"
)

const maxBodyBytes = 1 << 20

// problem: тело ответа 4xx/5xx
type problem struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Desc    string `json:"desc,omitempty"`
}

var internalProblem = problem{
	Error: "Internal server error",
	Desc:  narrative.SystemError(),
}

// writeJSON отдаёт JSON с нужным статусом. Если v не сериализуется,
// клиент получает 500, а ошибка возвращается вызывающему.
func writeJSON(w http.ResponseWriter, code int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		code = http.StatusInternalServerError
		body, _ = json.Marshal(internalProblem)
		err = fmt.Errorf("encode response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(append(body, '\n'))
	return err
}

// reply sends a 200 and logs when v could not be encoded.
func reply(w http.ResponseWriter, r *http.Request, lg *logger.Logger, v any) {
	if err := writeJSON(w, http.StatusOK, v); err != nil {
		lg.WithRequestID(middleware.RequestID(r.Context())).Error("write_response_failed", err, map[string]any{
			"path": r.URL.Path,
		})
	}
}

func writeProblem(w http.ResponseWriter, code int, msg, details string) {
	_ = writeJSON(w, code, problem{Error: msg, Details: details})
}

// Internal is the reply for anything that went wrong on our side; the
// recover middleware uses it too.
func Internal(w http.ResponseWriter, _ *http.Request) {
	_ = writeJSON(w, http.StatusInternalServerError, internalProblem)
}

// decode reads a single JSON value into dst. An empty body decodes as {} so
// the required-field check produces the usual 400.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode body: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("decode body: unexpected data after the JSON object")
	}
	return nil
}

// fail maps a service error to the response: validation problems are the
// caller's, everything else is ours.
func fail(w http.ResponseWriter, r *http.Request, lg *logger.Logger, action string, err error) {
	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		writeProblem(w, http.StatusBadRequest, ve.Message, ve.Details)
		return
	}
	lg.WithRequestID(middleware.RequestID(r.Context())).Error(action, err, nil)
	Internal(w, r)
}

func malformed(w http.ResponseWriter, err error) {
	writeProblem(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
}
