package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

type HttpResponse struct {
	Body       io.ReadCloser
	StatusCode int
	Headers    http.Header
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Controller is the handler contract every presentation controller satisfies
type Controller interface {
	Handle(HttpRequest) *HttpResponse
}
