package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
)

// CreateResponse marshals body into an HttpResponse with the given status code
func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"error encoding response"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(jsonBody)),
		StatusCode: statusCode,
	}
}

// CreateFileResponse wraps already-rendered bytes (e.g. a spreadsheet) without
// JSON encoding them
func CreateFileResponse(data []byte, contentType, fileName string, statusCode int) *presentationProtocols.HttpResponse {
	headers := http.Header{}
	headers.Set("Content-Type", contentType)
	headers.Set("Content-Disposition", `attachment; filename="`+fileName+`"`)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		StatusCode: statusCode,
		Headers:    headers,
	}
}
