package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mathysbarber/agenda-api/internal/httperr"
	"github.com/mathysbarber/agenda-api/internal/httpresp"
	"github.com/mathysbarber/agenda-api/internal/payments"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	gateway payments.Gateway
}

func NewPaymentHandler(gateway payments.Gateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// Tabela de preços por tipo de corte (CLP). Cut types são texto
// livre; o que não estiver na tabela cai no preço base.
var cutPrices = map[string]float64{
	"Corte":         10000,
	"Barba":         7000,
	"Corte + Barba": 15000,
}

const defaultPrice = 3000

type CreatePreferenceRequest struct {
	BarberName string   `json:"barber_name" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	Time       string   `json:"time" binding:"required"`
	CutType    string   `json:"cut_type" binding:"required"`
	Extras     []string `json:"extras"`

	AppointmentReference string `json:"appointment_reference"`
}

func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	var req CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	price, ok := cutPrices[req.CutType]
	if !ok {
		price = defaultPrice
	}

	id, err := h.gateway.CreatePreference(c.Request.Context(), payments.PreferenceInput{
		BarberName:        req.BarberName,
		Date:              req.Date,
		Time:              req.Time,
		CutType:           req.CutType,
		Extras:            req.Extras,
		UnitPrice:         price,
		ExternalReference: req.AppointmentReference,
	})
	if err != nil {
		// estado desconhecido lá em cima ⇒ upstream_error, nunca sucesso
		httperr.BadGateway(c, "upstream_error", "Erro ao criar a preferência de pagamento.")
		return
	}

	httpresp.OK(c, gin.H{"id": id})
}
