package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error shape of the reservation API: a single detail
// message, surfaced to clients verbatim.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// ResponseJSON writes data as a plain JSON body with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ResponseDetail writes an error body with the given status code.
func ResponseDetail(w http.ResponseWriter, code int, detail string) {
	ResponseJSON(w, code, ErrorBody{Detail: detail})
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, detail string) {
	ResponseDetail(w, http.StatusBadRequest, detail)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, detail string) {
	ResponseDetail(w, http.StatusNotFound, detail)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, detail string) {
	ResponseDetail(w, http.StatusConflict, detail)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, detail string) {
	ResponseDetail(w, http.StatusInternalServerError, detail)
}
