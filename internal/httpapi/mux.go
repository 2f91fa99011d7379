package httpapi

import (
	"net/http"
)

func NewMux(version string) *http.ServeMux {
	mux := http.NewServeMux()
	registerHealthcheck(mux, version)
	return mux
}
