package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// ======================================================
// PAYMENT PREFERENCE GATEWAY
// ======================================================

type PreferenceInput struct {
	BarberName string
	Date       string
	Time       string
	CutType    string
	Extras     []string
	UnitPrice  float64

	// referência da cita, para conciliar o pagamento depois
	ExternalReference string
}

type Gateway interface {
	CreatePreference(ctx context.Context, in PreferenceInput) (string, error)
}

type MercadoPago struct {
	client  preference.Client
	backURL string
}

func NewMercadoPago(accessToken, backURL string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		client:  preference.NewClient(cfg),
		backURL: backURL,
	}, nil
}

// CreatePreference cria a preferência de pagamento. Timeout curto e
// uma única retentativa: se a resposta se perder, o estado fica
// desconhecido e nunca assumimos sucesso.
func (g *MercadoPago) CreatePreference(
	ctx context.Context,
	in PreferenceInput,
) (string, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       fmt.Sprintf("Cita com %s - %s", in.BarberName, in.CutType),
				Description: fmt.Sprintf("Extras: %s", strings.Join(in.Extras, ", ")),
				Quantity:    1,
				UnitPrice:   in.UnitPrice,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: g.backURL + "?status=success",
			Failure: g.backURL + "?status=failure",
			Pending: g.backURL + "?status=pending",
		},
		AutoReturn:        "approved",
		ExternalReference: in.ExternalReference,
	}

	id, err := g.create(ctx, req)
	if err != nil {
		// uma retentativa só; depois disso o erro sobe como upstream
		id, err = g.create(ctx, req)
	}
	return id, err
}

func (g *MercadoPago) create(ctx context.Context, req preference.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}
