package receipts

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ReceiptPoints/pkg/kit"
)

type Server struct {
	Store   Store
	Log     *zap.Logger
	Metrics *Metrics
}

const maxReceiptBody = 1 << 20

const notFoundMsg = "No receipt found for that ID."

func (s *Server) ProcessHandler() http.HandlerFunc { return s.process }
func (s *Server) PointsHandler() http.HandlerFunc  { return s.points }
func (s *Server) StatsHandler() http.HandlerFunc   { return s.stats }

func (s *Server) process(w http.ResponseWriter, r *http.Request) {
	rc, err := decodeReceipt(w, r)
	if err != nil {
		s.Metrics.rejected()
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if err := validateReceipt(rc); err != nil {
		s.Metrics.rejected()
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	points := CalculatePoints(rc)

	id, err := s.Store.Submit(r.Context(), ScoreRecord{Receipt: rc, Points: points})
	if err != nil {
		if s.Log != nil {
			s.Log.Error("store submit failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	s.Metrics.observe(points)
	kit.WriteJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (s *Server) points(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, found, err := s.Store.Get(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("store get failed", zap.Error(err), zap.String("receipt_id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !found {
		kit.WriteText(w, http.StatusNotFound, notFoundMsg)
		return
	}

	kit.WriteJSON(w, http.StatusOK, map[string]int64{"points": rec.Points})
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	n, err := s.Store.Count(r.Context())
	if err != nil {
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]int{"receipts": n})
}

func decodeReceipt(w http.ResponseWriter, r *http.Request) (Receipt, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxReceiptBody)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var rc Receipt
	if err := dec.Decode(&rc); err != nil {
		return Receipt{}, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return Receipt{}, errors.New("extra data after json object")
	}

	return rc, nil
}

// validateReceipt checks structural completeness only. Field contents stay
// lenient: an unparseable date, time, or amount scores zero on its rule
// rather than failing the request.
func validateReceipt(rc Receipt) error {
	switch {
	case rc.Retailer == "":
		return errors.New("retailer required")
	case rc.PurchaseDate == "":
		return errors.New("purchaseDate required")
	case rc.PurchaseTime == "":
		return errors.New("purchaseTime required")
	case rc.Total == "":
		return errors.New("total required")
	case rc.Items == nil:
		return errors.New("items required")
	}
	return nil
}
