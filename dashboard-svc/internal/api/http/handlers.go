package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/service"
	"menuqr-dashboard/dashboard-svc/internal/storefront"
	"menuqr-dashboard/dashboard-svc/internal/transport"

	"github.com/gorilla/mux"
)

type PublicMenu interface {
	GetPublicMenu(ctx context.Context, slug string) (*domain.PublicMenu, error)
}

var _ PublicMenu = (*service.MenuService)(nil)

// Handler serves the customer-facing storefront by relaying to the backend
// API's public endpoints.
type Handler struct {
	Menu     PublicMenu
	Orders   storefront.PublicOrders
	Payments storefront.PublicPayments
	QR       storefront.QRGenerator
}

func NewHandler(menu PublicMenu, orders storefront.PublicOrders, payments storefront.PublicPayments, qr storefront.QRGenerator) *Handler {
	return &Handler{
		Menu:     menu,
		Orders:   orders,
		Payments: payments,
		QR:       qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	s := r.PathPrefix("/api/storefront/{slug}").Subrouter()
	s.HandleFunc("/qrcode", h.getQRCode).Methods("GET")
	s.HandleFunc("/menu", h.getMenu).Methods("GET")
	s.HandleFunc("/orders", h.createOrder).Methods("POST")
	s.HandleFunc("/orders/{orderNumber}/status", h.getOrderStatus).Methods("GET")
	s.HandleFunc("/payment-info", h.getPaymentInfo).Methods("GET")
	s.HandleFunc("/payments/confirm", h.confirmPayment).Methods("POST")
	s.HandleFunc("/payments/{transactionId}/status", h.getPaymentStatus).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "dashboard-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	png, err := h.QR.Generate(slug, r.URL.Query().Get("table"))
	if err != nil {
		log.Printf("ERROR: [STOREFRONT] QR code for %s: %v", slug, err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(png)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	menu, err := h.Menu.GetPublicMenu(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}
	if menu == nil {
		writeMessage(w, http.StatusNotFound, "Menu not found")
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	var req domain.CreateOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := storefront.ValidateOrderRequest(req); err != nil {
		writeError(w, err)
		return
	}

	order, err := h.Orders.CreatePublicOrder(r.Context(), slug, req)
	if err != nil {
		writeError(w, err)
		return
	}
	if order == nil {
		writeMessage(w, http.StatusBadGateway, "Empty response from backend")
		return
	}
	log.Printf("[STOREFRONT] order %s placed for %s", order.OrderNumber, slug)
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	status, err := h.Orders.GetPublicOrderStatus(r.Context(), vars["slug"], vars["orderNumber"])
	if err != nil {
		writeError(w, err)
		return
	}
	if status == nil {
		writeMessage(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) getPaymentInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Payments.GetPublicPaymentInfo(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err)
		return
	}
	if info == nil {
		writeMessage(w, http.StatusNotFound, "Payment information not found")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	var req domain.ManualPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := storefront.ValidateManualPayment(req); err != nil {
		writeError(w, err)
		return
	}

	payment, err := h.Payments.ConfirmManualPayment(r.Context(), slug, req)
	if err != nil {
		writeError(w, err)
		return
	}
	if payment == nil {
		writeMessage(w, http.StatusBadGateway, "Empty response from backend")
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) getPaymentStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	status, err := h.Payments.GetPublicPaymentStatus(r.Context(), vars["slug"], vars["transactionId"])
	if err != nil {
		writeError(w, err)
		return
	}
	if status == nil {
		writeMessage(w, http.StatusNotFound, "Payment not found")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// writeError relays backend HTTP errors with their status, answers 400 for
// input the storefront rejected and 502 for anything else.
// maxBodyBytes caps the JSON bodies accepted on the public routes.
const maxBodyBytes = 64 << 10

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeMessage(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return false
	}
	writeMessage(w, http.StatusBadRequest, "Invalid request body")
	return false
}

func writeError(w http.ResponseWriter, err error) {
	var apiErr *transport.APIError
	switch {
	case errors.As(err, &apiErr):
		message := apiErr.Message
		if message == "" {
			message = http.StatusText(apiErr.StatusCode)
		}
		writeMessage(w, apiErr.StatusCode, message)
	case storefront.IsValidation(err):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("ERROR: [STOREFRONT] backend request failed: %v", err)
		writeMessage(w, http.StatusBadGateway, "Backend unavailable")
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
