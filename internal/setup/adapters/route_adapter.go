package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
)

// AdaptRoute bridges a presentation controller into a net/http handler
func AdaptRoute(controller presentationProtocols.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		for key, values := range response.Headers {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}

		w.WriteHeader(response.StatusCode)
		if response.Body != nil {
			defer response.Body.Close()
			io.Copy(w, response.Body) //nolint:errcheck
		}
	}
}
