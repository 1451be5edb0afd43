package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func ReadBody[T any](r *http.Request) (T, error) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, err
	}
	return body, nil
}

func JSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// GetId parses the {id} route variable. On failure it writes the 400 itself
// and returns 0, which never collides with a generated id.
func GetId(w http.ResponseWriter, r *http.Request) int64 {
	idStr := mux.Vars(r)["id"]
	serviceID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || serviceID <= 0 {
		Error(w, http.StatusBadRequest, "Invalid service id")
		return 0
	}
	return serviceID
}
