package models

// StatusResponse is the body returned by the service status page. Clients
// use it to ping the service and discover the running version.
type StatusResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ErrorResponse is the structured error body returned for every failed
// request. Error carries the error-kind identifier that client libraries
// map back to a typed error; Message is human-readable detail.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
