package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/dto"
)

// Root handles GET /.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.Message{Message: "Hello World"})
}
