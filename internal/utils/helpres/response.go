package helpers

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		return
	}
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	JSON(w, status, map[string]string{"message": errMsg})
}

// Validation пишет 422 с пофилдовыми сообщениями об ошибках.
func Validation(w http.ResponseWriter, msg string, fields map[string][]string) {
	payload := map[string]interface{}{"message": msg}
	if len(fields) > 0 {
		payload["errors"] = fields
	}
	JSON(w, http.StatusUnprocessableEntity, payload)
}
