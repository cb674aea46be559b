package cart

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Sabwear/internal/session"
	"Sabwear/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Register(r chi.Router) {
	r.Get("/cart", s.list)
	r.Post("/cart", s.add)
	r.Patch("/cart/{id}", s.updateQuantity)
	r.Delete("/cart/{id}", s.remove)
	r.Delete("/cart", s.clear)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	sid := session.FromContext(r.Context())

	lines, err := s.Store.ListForSession(r.Context(), sid)
	if err != nil {
		// ErrIntegrity lands here too: a broken catalog reference is a
		// server fault, never a user-facing condition.
		s.serverError(w, r, "list cart failed", err, zap.String("session_id", sid))
		return
	}
	kit.WriteJSON(w, http.StatusOK, lines)
}

type addReq struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	var req addReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	fe := kit.FieldErrors{}
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.ProductID == "" {
		fe.Add("productId", "required")
	}
	qty := 0
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			fe.Add("quantity", "must be a positive integer")
		}
		qty = *req.Quantity
	}
	if !fe.Empty() {
		kit.WriteFieldErrors(w, r, "invalid cart item", fe)
		return
	}

	// Product existence is deliberately not checked here; a dangling
	// reference surfaces at read time as an integrity fault.
	item, err := s.Store.Add(r.Context(), AddParams{
		SessionID: session.FromContext(r.Context()),
		ProductID: req.ProductID,
		Quantity:  qty,
	})
	if err != nil {
		s.serverError(w, r, "add to cart failed", err, zap.String("product_id", req.ProductID))
		return
	}

	kit.WriteJSON(w, http.StatusCreated, item)
}

type updateReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if req.Quantity < 1 {
		kit.WriteFieldErrors(w, r, "invalid quantity", kit.FieldErrors{"quantity": "must be at least 1"})
		return
	}

	item, found, err := s.Store.UpdateQuantity(r.Context(), id, req.Quantity)
	if err != nil {
		if errors.Is(err, ErrQuantityTooLow) {
			kit.WriteFieldErrors(w, r, "invalid quantity", kit.FieldErrors{"quantity": "must be at least 1"})
			return
		}
		s.serverError(w, r, "update quantity failed", err, zap.String("item_id", id))
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}

	kit.WriteJSON(w, http.StatusOK, item)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Idempotent: removing an id that is not there is still a 204.
	if err := s.Store.Remove(r.Context(), id); err != nil {
		s.serverError(w, r, "remove from cart failed", err, zap.String("item_id", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	sid := session.FromContext(r.Context())

	if err := s.Store.Clear(r.Context(), sid); err != nil {
		s.serverError(w, r, "clear cart failed", err, zap.String("session_id", sid))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append(fields, zap.Error(err))...)
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra data after json object")
	}
	return nil
}
