package httpx

import "net/http"

// ServiceName identifies the console in health responses.
const ServiceName = "crawl-admin"

type healthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// healthHandler answers liveness probes without calling the backend.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, healthStatus{Status: "ok", Service: ServiceName})
}
