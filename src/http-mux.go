package src

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// MessageHandler serves the /mensagens routes on top of a MessageService
type MessageHandler struct {
	service     *MessageService
	log         logrus.FieldLogger
	maxPageSize int
}

func NewMessageHandler(service *MessageService, log logrus.FieldLogger, maxPageSize int) *MessageHandler {
	return &MessageHandler{service: service, log: log, maxPageSize: maxPageSize}
}

// Register mounts the message routes under /mensagens
func (h *MessageHandler) Register(router *mux.Router) {
	s := router.PathPrefix("/mensagens").Subrouter()
	for _, root := range []string{"", "/"} {
		s.HandleFunc(root, h.create).Methods(http.MethodPost)
		s.HandleFunc(root, h.list).Methods(http.MethodGet)
	}
	s.HandleFunc("/{id}", h.get).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.delete).Methods(http.MethodDelete)
	s.HandleFunc("/{id}/gostei", h.like).Methods(http.MethodPut)
}

// GetHTTPHandler wires the message API, the healthcheck and the access log/recovery/CORS middlewares.
// Access log lines go to accessLog, the caller owns and closes it.
func GetHTTPHandler(db *gorm.DB, config Config, log *logrus.Logger, accessLog io.Writer) http.Handler {
	service := NewMessageService(NewMessageRepository(db))
	router := mux.NewRouter()

	NewMessageHandler(service, log, config.MaxPageSize).Register(router)

	router.HandleFunc("/healthcheck", func(res http.ResponseWriter, req *http.Request) {
		if err := db.DB().Ping(); err != nil {
			sendText(res, "ERROR: "+err.Error(), http.StatusBadRequest)
			return
		}
		sendText(res, "OK", http.StatusOK)
	}).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: config.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	var handler http.Handler = router
	handler = handlers.RecoveryHandler(handlers.RecoveryLogger(log), handlers.PrintRecoveryStack(config.Debug))(handler)
	handler = handlers.CombinedLoggingHandler(accessLog, handler)
	return c.Handler(handler)
}

func (h *MessageHandler) create(res http.ResponseWriter, req *http.Request) {
	h.log.Info("create message requested")

	body, ok := h.readMessageRequest(res, req)
	if !ok {
		return
	}

	m, err := h.service.Create(body)
	if err != nil {
		sendUnexpectedError(res, h.log, err)
		return
	}
	sendAsJSON(res, h.log, m, http.StatusCreated)
}

func (h *MessageHandler) get(res http.ResponseWriter, req *http.Request) {
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}
	h.log.WithField("id", id).Info("get message requested")

	m, err := h.service.Get(id)
	if err != nil {
		h.sendServiceError(res, err)
		return
	}
	sendAsJSON(res, h.log, m, http.StatusOK)
}

func (h *MessageHandler) list(res http.ResponseWriter, req *http.Request) {
	p := ParsePageRequest(req.URL.Query(), h.maxPageSize)
	h.log.WithFields(logrus.Fields{"page": p.Page, "size": p.Size}).Info("list messages requested")

	page, err := h.service.List(p)
	if err != nil {
		sendUnexpectedError(res, h.log, err)
		return
	}
	sendAsJSON(res, h.log, page, http.StatusOK)
}

func (h *MessageHandler) update(res http.ResponseWriter, req *http.Request) {
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}
	h.log.WithField("id", id).Info("update message requested")

	body, ok := h.readMessageRequest(res, req)
	if !ok {
		return
	}

	m, err := h.service.Update(id, body)
	if err != nil {
		h.sendServiceError(res, err)
		return
	}
	sendAsJSON(res, h.log, m, http.StatusOK)
}

func (h *MessageHandler) like(res http.ResponseWriter, req *http.Request) {
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}
	h.log.WithField("id", id).Info("like message requested")

	m, err := h.service.Like(id)
	if err != nil {
		h.sendServiceError(res, err)
		return
	}
	sendAsJSON(res, h.log, m, http.StatusOK)
}

func (h *MessageHandler) delete(res http.ResponseWriter, req *http.Request) {
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}
	h.log.WithField("id", id).Info("delete message requested")

	if _, err := h.service.Delete(id); err != nil {
		h.sendServiceError(res, err)
		return
	}
	sendText(res, "mensagem removida", http.StatusOK)
}

// pathID parses the {id} route variable, answering 400 itself when it isn't a uuid
func (h *MessageHandler) pathID(res http.ResponseWriter, req *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		sendText(res, ErrInvalidID.Error(), http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// readMessageRequest decodes and validates a write body, answering the client error itself on failure
func (h *MessageHandler) readMessageRequest(res http.ResponseWriter, req *http.Request) (MessageRequest, bool) {
	body := MessageRequest{}
	if !isJSONRequest(req) {
		sendErrorResponse(res, h.log, "Unsupported media type", []string{"content-type must be " + contentTypeJSON}, http.StatusUnsupportedMediaType)
		return body, false
	}
	if err := parseRequestBody(req, &body); err != nil {
		sendErrorResponse(res, h.log, "Malformed request body", []string{err.Error()}, http.StatusBadRequest)
		return body, false
	}
	if violations := ValidateMessageRequest(body); len(violations) > 0 {
		sendErrorResponse(res, h.log, "Validation error", violations, http.StatusBadRequest)
		return body, false
	}
	return body, true
}

func (h *MessageHandler) sendServiceError(res http.ResponseWriter, err error) {
	if nf, ok := isNotFound(err); ok {
		sendText(res, nf.Error(), http.StatusNotFound)
		return
	}
	sendUnexpectedError(res, h.log, err)
}
