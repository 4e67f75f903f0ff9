package src

import (
	"mime"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

func sendAsJSON(r http.ResponseWriter, log logrus.FieldLogger, object interface{}, statusCode int) {
	body, err := json.Marshal(object)
	if err != nil {
		sendUnexpectedError(r, log, err)
		return
	}

	r.Header().Set("content-type", contentTypeJSON)
	r.WriteHeader(statusCode)
	r.Write(body)
}

func sendText(r http.ResponseWriter, text string, statusCode int) {
	r.Header().Set("content-type", contentTypeText)
	r.WriteHeader(statusCode)
	r.Write([]byte(text))
}

func sendErrorResponse(r http.ResponseWriter, log logrus.FieldLogger, message string, errors []string, statusCode int) {
	sendAsJSON(r, log, ErrorResponse{Message: message, Errors: errors}, statusCode)
}

// sendUnexpectedError hides the cause from the client, it only goes to the log
func sendUnexpectedError(r http.ResponseWriter, log logrus.FieldLogger, err error) {
	log.WithError(err).Error("unexpected error")
	sendText(r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func isJSONRequest(req *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(req.Header.Get("content-type"))
	return err == nil && mediaType == contentTypeJSON
}

func parseRequestBody(req *http.Request, m interface{}) error {
	return json.NewDecoder(req.Body).Decode(m)
}
