package http

import (
	"encoding/json"
	"errors"
	"event-ticket/common/errs"
	"event-ticket/model"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strconv"
)

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	var message string
	var data any
	var domainErr *errs.Error
	if httpErr, ok := err.(*errs.HttpError); ok {
		message = httpErr.Message
		data = httpErr.Data
		w.WriteHeader(httpErr.Code)
	} else if errors.As(err, &domainErr) {
		message = domainErr.Message
		data = model.ErrorKindData{Kind: domainErr.Kind.String()}
		w.WriteHeader(domainErr.Kind.HttpStatus())
	} else if validationErr, ok := err.(validator.ValidationErrors); ok {
		message = "Validation failed"
		w.WriteHeader(http.StatusBadRequest)

		validationErrors := make(map[string]string)
		for _, fieldErr := range validationErr {
			fieldName := fieldErr.Field()
			validationErrors[fieldName] = fieldErr.Tag()
		}

		data = validationErrors
	} else {
		message = "Internal Server Error"
		w.WriteHeader(500)
	}

	errorResponse := model.ErrorResponse{Error: message, Data: data}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, &errs.HttpError{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Data:    map[string]any{name: "not valid"},
		}
	}

	return id, nil
}
