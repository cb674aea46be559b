package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"Sabwear/internal/catalog"
	"Sabwear/internal/session"
	"Sabwear/pkg/kit"
)

const maxSubmitBody = 1 << 20

// ProductSource is the catalog slice checkout needs: price lookup at
// submission time.
type ProductSource interface {
	Get(ctx context.Context, id string) (catalog.Product, bool, error)
}

type Server struct {
	Store    Store
	Products ProductSource
	Regions  *Regions
	Log      *zap.Logger

	// SubmitLimiter, when set, throttles order submission.
	SubmitLimiter func(http.Handler) http.Handler
}

func (s *Server) Register(r chi.Router) {
	r.Get("/checkout/wilayas", s.wilayas)
	r.Get("/checkout/wilayas/{id}/communes", s.communes)
	r.Get("/orders/{id}", s.getOrder)

	if s.SubmitLimiter != nil {
		r.With(s.SubmitLimiter).Post("/checkout", s.submit)
		return
	}
	r.Post("/checkout", s.submit)
}

func (s *Server) wilayas(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Regions.Wilayas())
}

func (s *Server) communes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cs, ok := s.Regions.Communes(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "unknown wilaya", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, cs)
}

type submitReq struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	WilayaID     string `json:"wilayaId"`
	Commune      string `json:"commune"`
	Address      string `json:"address"`
	ProductID    string `json:"productId"`
	SelectedSize string `json:"selectedSize"`
	Quantity     *int   `json:"quantity"`
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := decodeSubmit(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	if fe := s.validateSubmit(&req, qty); !fe.Empty() {
		kit.WriteFieldErrors(w, r, "invalid order", fe)
		return
	}

	p, ok, err := s.Products.Get(r.Context(), req.ProductID)
	if err != nil {
		s.serverError(w, r, "product lookup failed", err, zap.String("product_id", req.ProductID))
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "unknown product", map[string]any{"productId": req.ProductID})
		return
	}

	unit, err := p.UnitPrice()
	if err != nil {
		s.serverError(w, r, "unparseable product price", err, zap.String("product_id", p.ID))
		return
	}
	total := unit.Mul(decimal.NewFromInt(int64(qty)))

	o := Order{
		ID:        "ord_" + uuid.NewString(),
		SessionID: session.FromContext(r.Context()),
		ProductID: p.ID,
		Size:      req.SelectedSize,
		Quantity:  qty,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		WilayaID:  req.WilayaID,
		Commune:   req.Commune,
		Address:   req.Address,
		Total:     total.StringFixed(2),
		Status:    StatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.Create(r.Context(), o); err != nil {
		s.serverError(w, r, "create order failed", err, zap.String("order_id", o.ID))
		return
	}

	kit.WriteJSON(w, http.StatusCreated, o)
}

func (s *Server) validateSubmit(req *submitReq, qty int) kit.FieldErrors {
	fe := kit.FieldErrors{}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.WilayaID = strings.TrimSpace(req.WilayaID)
	req.Commune = strings.TrimSpace(req.Commune)
	req.Address = strings.TrimSpace(req.Address)
	req.ProductID = strings.TrimSpace(req.ProductID)
	req.SelectedSize = strings.TrimSpace(req.SelectedSize)

	if req.FirstName == "" {
		fe.Add("firstName", "required")
	}
	if req.LastName == "" {
		fe.Add("lastName", "required")
	}
	switch {
	case req.Phone == "":
		fe.Add("phone", "required")
	case !validPhone(req.Phone):
		fe.Add("phone", "not a valid phone number")
	}
	if req.ProductID == "" {
		fe.Add("productId", "required")
	}
	if req.SelectedSize == "" {
		fe.Add("selectedSize", "required")
	}
	if qty < 1 {
		fe.Add("quantity", "must be at least 1")
	}

	switch {
	case req.WilayaID == "":
		fe.Add("wilayaId", "required")
	case !s.Regions.HasWilaya(req.WilayaID):
		fe.Add("wilayaId", "unknown wilaya")
	case req.Commune == "":
		fe.Add("commune", "required")
	case !s.Regions.HasCommune(req.WilayaID, req.Commune):
		fe.Add("commune", "not a commune of the selected wilaya")
	}

	return fe
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	o, found, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.serverError(w, r, "get order failed", err, zap.String("order_id", id))
		return
	}
	// A foreign session's order reads as not-found so order ids leak
	// nothing across carts.
	if !found || o.SessionID != session.FromContext(r.Context()) {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}

	kit.WriteJSON(w, http.StatusOK, o)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append(fields, zap.Error(err))...)
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}

func decodeSubmit(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBody)
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

// validPhone accepts digits with optional leading + and common separators,
// 8 to 15 digits total.
func validPhone(s string) bool {
	digits := 0
	for i, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
			digits++
		case ch == '+' && i == 0:
		case ch == ' ' || ch == '-':
		default:
			return false
		}
	}
	return digits >= 8 && digits <= 15
}
