package handler

import "net/http"

// Me echoes the resolved caller identity.
func Me(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, id)
}
